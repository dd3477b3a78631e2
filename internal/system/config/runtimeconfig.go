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

import "sync"

// SellSightRuntime holds the runtime configuration for the SellSight server.
type SellSightRuntime struct {
	SellSightHome string `yaml:"sellsight_home"`
	Config        Config `yaml:"config"`
}

var (
	runtimeConfig *SellSightRuntime
	once          sync.Once
)

// InitializeSellSightRuntime initializes the SellSightRuntime configuration.
func InitializeSellSightRuntime(sellsightHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &SellSightRuntime{
			SellSightHome: sellsightHome,
			Config:        *config,
		}
	})

	return nil
}

// GetSellSightRuntime returns the SellSightRuntime configuration.
func GetSellSightRuntime() *SellSightRuntime {
	if runtimeConfig == nil {
		panic("SellSightRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetSellSightRuntime resets the SellSightRuntime.
// This should only be used in tests to reset the singleton state.
func ResetSellSightRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
