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

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	dataStore.Set("key1", "value1")

	exists, value := dataStore.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, "value1", value)
}

func TestGetMissingKey(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	exists, value := dataStore.Get("absent")
	assert.False(t, exists)
	assert.Empty(t, value)
}

func TestSetOverwritesExistingValue(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	dataStore.Set("key1", "value1")
	dataStore.Set("key1", "value2")

	exists, value := dataStore.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, "value2", value)
}

func TestEmptyKeyIgnored(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	dataStore.Set("", "value")

	exists, _ := dataStore.Get("")
	assert.False(t, exists)
}

func TestDelete(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	dataStore.Set("key1", "value1")
	dataStore.Delete("key1")

	exists, _ := dataStore.Get("key1")
	assert.False(t, exists)
}

func TestExpiredEntryIsRemoved(t *testing.T) {
	dataStore := NewSessionDataStore(10 * time.Millisecond)

	dataStore.Set("key1", "value1")
	time.Sleep(20 * time.Millisecond)

	exists, _ := dataStore.Get("key1")
	assert.False(t, exists)
}

func TestClear(t *testing.T) {
	dataStore := NewSessionDataStore(time.Minute)

	dataStore.Set("key1", "value1")
	dataStore.Set("key2", "value2")
	dataStore.Clear()

	exists, _ := dataStore.Get("key1")
	assert.False(t, exists)
	exists, _ = dataStore.Get("key2")
	assert.False(t, exists)
}

func TestGetSessionDataStoreReturnsSingleton(t *testing.T) {
	first := GetSessionDataStore()
	second := GetSessionDataStore()

	assert.Same(t, first, second)
}
