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

// Package store provides the string-keyed persisted session data storage that
// survives the full-page navigations of the connector flow.
package store

import (
	"sync"
	"time"
)

// defaultValidityPeriod bounds how long abandoned wizard state is retained.
const defaultValidityPeriod = 30 * time.Minute

// SessionDataStoreInterface defines the interface for session data storage.
type SessionDataStoreInterface interface {
	Set(key, value string)
	Get(key string) (bool, string)
	Delete(key string)
	Clear()
}

// sessionStoreEntry represents an entry in the session data store.
type sessionStoreEntry struct {
	value      string
	expiryTime time.Time
}

// SessionDataStore provides the session data store functionality.
type SessionDataStore struct {
	sessionStore   map[string]sessionStoreEntry
	validityPeriod time.Duration
	mu             sync.RWMutex
}

var (
	instance *SessionDataStore
	once     sync.Once
)

// GetSessionDataStore returns a singleton instance of SessionDataStore.
func GetSessionDataStore() SessionDataStoreInterface {
	once.Do(func() {
		instance = &SessionDataStore{
			sessionStore:   make(map[string]sessionStoreEntry),
			validityPeriod: defaultValidityPeriod,
		}
	})

	return instance
}

// NewSessionDataStore creates a session data store with the given entry validity period.
func NewSessionDataStore(validityPeriod time.Duration) SessionDataStoreInterface {
	if validityPeriod <= 0 {
		validityPeriod = defaultValidityPeriod
	}
	return &SessionDataStore{
		sessionStore:   make(map[string]sessionStoreEntry),
		validityPeriod: validityPeriod,
	}
}

// Set adds a session data entry to the session store.
func (sds *SessionDataStore) Set(key, value string) {
	if key == "" {
		return
	}

	sds.mu.Lock()
	defer sds.mu.Unlock()

	sds.sessionStore[key] = sessionStoreEntry{
		value:      value,
		expiryTime: time.Now().Add(sds.validityPeriod),
	}
}

// Get retrieves a session data entry from the session store.
func (sds *SessionDataStore) Get(key string) (bool, string) {
	if key == "" {
		return false, ""
	}

	sds.mu.RLock()
	entry, exists := sds.sessionStore[key]
	sds.mu.RUnlock()

	if exists {
		if time.Now().Before(entry.expiryTime) {
			return true, entry.value
		}
		// Remove the expired entry.
		sds.mu.Lock()
		delete(sds.sessionStore, key)
		sds.mu.Unlock()
	}

	return false, ""
}

// Delete removes a specific session data entry from the session store.
func (sds *SessionDataStore) Delete(key string) {
	if key == "" {
		return
	}

	sds.mu.Lock()
	defer sds.mu.Unlock()
	delete(sds.sessionStore, key)
}

// Clear removes all session data entries from the session store.
func (sds *SessionDataStore) Clear() {
	sds.mu.Lock()
	defer sds.mu.Unlock()

	sds.sessionStore = make(map[string]sessionStoreEntry)
}
