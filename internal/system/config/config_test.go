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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  hostname: "localhost"
  port: 8090
  http_only: true

commerce:
  client_id: "client123"
  client_secret: "secret456"
  redirect_uri: "https://app.sellsight.example/connector/callback"
  auth_url: "https://provider.example/oauth2/auth"
  token_url: "https://provider.example/oauth2/token"
  api_base_url: "https://provider.example/api"
  scopes:
    - "offline_access"
  request_timeout: 30

connector:
  environment: "development"
  allow_missing_state_token: false
  dev_fallback_project_id: 99

session:
  validity_period: 1800
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Hostname)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.True(t, cfg.Server.HTTPOnly)
	assert.Equal(t, "client123", cfg.Commerce.ClientID)
	assert.Equal(t, []string{"offline_access"}, cfg.Commerce.Scopes)
	assert.Equal(t, int64(30), cfg.Commerce.RequestTimeout)
	assert.Equal(t, "development", cfg.Connector.Environment)
	assert.False(t, cfg.Connector.AllowMissingStateToken)
	assert.Equal(t, int64(99), cfg.Connector.DevFallbackProjectID)
	assert.Equal(t, int64(1800), cfg.Session.ValidityPeriod)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9443")
	t.Setenv("COMMERCE_CLIENT_ID", "override-client")

	cfg, err := LoadConfig(writeConfigFile(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 9443, cfg.Server.Port)
	assert.Equal(t, "override-client", cfg.Commerce.ClientID)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "server: [unclosed"))

	assert.Error(t, err)
}

func TestRuntimeSingleton(t *testing.T) {
	ResetSellSightRuntime()
	t.Cleanup(ResetSellSightRuntime)

	require.NoError(t, InitializeSellSightRuntime("/opt/sellsight", &Config{
		Server: ServerConfig{Port: 8090},
	}))

	runtime := GetSellSightRuntime()
	assert.Equal(t, "/opt/sellsight", runtime.SellSightHome)
	assert.Equal(t, 8090, runtime.Config.Server.Port)
}

func TestRuntimePanicsWhenUninitialized(t *testing.T) {
	ResetSellSightRuntime()
	t.Cleanup(ResetSellSightRuntime)

	assert.Panics(t, func() { GetSellSightRuntime() })
}
