/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	yaml "gopkg.in/yaml.v3"

	"github.com/sellsight/sellsight/internal/system/log"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname" env:"SERVER_HOSTNAME"`
	Port     int    `yaml:"port" env:"SERVER_PORT"`
	HTTPOnly bool   `yaml:"http_only" env:"SERVER_HTTP_ONLY"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int64  `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
	Runtime  DataSource `yaml:"runtime"`
}

// CommerceConfig holds the e-commerce provider client configuration details.
type CommerceConfig struct {
	ClientID       string   `yaml:"client_id" env:"COMMERCE_CLIENT_ID"`
	ClientSecret   string   `yaml:"client_secret" env:"COMMERCE_CLIENT_SECRET"`
	RedirectURI    string   `yaml:"redirect_uri" env:"COMMERCE_REDIRECT_URI"`
	AuthURL        string   `yaml:"auth_url" env:"COMMERCE_AUTH_URL"`
	TokenURL       string   `yaml:"token_url" env:"COMMERCE_TOKEN_URL"`
	APIBaseURL     string   `yaml:"api_base_url" env:"COMMERCE_API_BASE_URL"`
	UserInfoURL    string   `yaml:"user_info_url" env:"COMMERCE_USER_INFO_URL"`
	Scopes         []string `yaml:"scopes"`
	RequestTimeout int64    `yaml:"request_timeout"`
}

// ConnectorConfig holds the integration connector flow configuration details.
type ConnectorConfig struct {
	// Environment names the deployment environment. The development project id
	// fallback is disabled when this is set to "production".
	Environment string `yaml:"environment" env:"CONNECTOR_ENVIRONMENT"`
	// AllowMissingStateToken opts in to the lenient CSRF policy: a callback
	// carrying a state value with no stored token proceeds instead of failing.
	AllowMissingStateToken bool `yaml:"allow_missing_state_token"`
	// DevFallbackProjectID substitutes a project id when resolution finds none.
	// Honored only outside production.
	DevFallbackProjectID int64 `yaml:"dev_fallback_project_id"`
	// SuccessDisplaySeconds is the delay before the success panel returns the
	// user to the wizard.
	SuccessDisplaySeconds int `yaml:"success_display_seconds"`
}

// SessionConfig holds the wizard session store configuration details.
type SessionConfig struct {
	// ValidityPeriod is the session entry lifetime in seconds.
	ValidityPeriod int64 `yaml:"validity_period"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Security  SecurityConfig  `yaml:"security"`
	CORS      CORSConfig      `yaml:"cors"`
	Database  DatabaseConfig  `yaml:"database"`
	Commerce  CommerceConfig  `yaml:"commerce"`
	Connector ConnectorConfig `yaml:"connector"`
	Session   SessionConfig   `yaml:"session"`
}

// LoadConfig loads the configurations from the specified YAML file and applies
// environment variable overrides on top of it.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
