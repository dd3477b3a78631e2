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

// Package session provides the typed repository over the persisted session
// store used to carry wizard state across the authorization redirect.
package session

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sellsight/sellsight/internal/session/store"
	"github.com/sellsight/sellsight/internal/system/log"
)

const loggerComponentName = "SessionRepository"

// RepositoryInterface defines the typed operations over the session store.
// Values meant to be used exactly once (the CSRF token and the resume step
// marker) are exposed only through consume operations that delete on read.
type RepositoryInterface interface {
	SavePendingAuthorization(sessionID string, auth PendingAuthorization) error
	GetPendingAuthorization(sessionID string) (*PendingAuthorization, bool)
	ClearPendingAuthorization(sessionID string)
	ConsumeCSRFToken(sessionID string) (string, bool)

	SaveProjectID(sessionID string, projectID int64)
	ResolveProjectID(sessionID string) (string, bool)

	SaveProjectDraft(sessionID string, draft ProjectDraft) error
	GetProjectDraft(sessionID string) (*ProjectDraft, bool)

	SaveTokenSet(sessionID string, tokens OAuthTokenSet) error
	GetTokenSet(sessionID string) (*OAuthTokenSet, bool)

	SaveImportResult(sessionID string, result ImportResult) error
	GetImportResult(sessionID string) (*ImportResult, bool)

	SetResumeStep(sessionID string, step int)
	ConsumeResumeStep(sessionID string) (int, bool)

	ClearSession(sessionID string)
}

// repository is the default implementation of RepositoryInterface.
type repository struct {
	store store.SessionDataStoreInterface
}

// NewRepository creates a session repository backed by the given data store.
func NewRepository(dataStore store.SessionDataStoreInterface) RepositoryInterface {
	if dataStore == nil {
		dataStore = store.GetSessionDataStore()
	}
	return &repository{
		store: dataStore,
	}
}

// sessionKey scopes a record key to a wizard session.
func sessionKey(sessionID, key string) string {
	return sessionID + ":" + key
}

// SavePendingAuthorization persists the pending authorization record and its
// CSRF token for the given session.
func (r *repository) SavePendingAuthorization(sessionID string, auth PendingAuthorization) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return err
	}
	r.store.Set(sessionKey(sessionID, keyPendingAuthorization), string(data))
	r.store.Set(sessionKey(sessionID, keyCSRFToken), auth.CSRFToken)
	return nil
}

// GetPendingAuthorization retrieves the pending authorization record for the session.
func (r *repository) GetPendingAuthorization(sessionID string) (*PendingAuthorization, bool) {
	exists, data := r.store.Get(sessionKey(sessionID, keyPendingAuthorization))
	if !exists {
		return nil, false
	}

	var auth PendingAuthorization
	if err := json.Unmarshal([]byte(data), &auth); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to parse pending authorization record", log.Error(err))
		return nil, false
	}
	return &auth, true
}

// ClearPendingAuthorization removes the consumed pending authorization record.
func (r *repository) ClearPendingAuthorization(sessionID string) {
	r.store.Delete(sessionKey(sessionID, keyPendingAuthorization))
}

// ConsumeCSRFToken reads and deletes the stored CSRF token in one step. The
// token is single-use: a duplicate callback invocation must not see it again,
// so it is removed regardless of whether the caller finds it valid.
func (r *repository) ConsumeCSRFToken(sessionID string) (string, bool) {
	key := sessionKey(sessionID, keyCSRFToken)
	exists, token := r.store.Get(key)
	r.store.Delete(key)
	return token, exists
}

// SaveProjectID persists the project identifier under the canonical key and
// the legacy key. Different wizard versions read different keys, and the
// redundant writes remove a class of lost-identifier failures across the
// navigation boundary.
func (r *repository) SaveProjectID(sessionID string, projectID int64) {
	value := strconv.FormatInt(projectID, 10)
	r.store.Set(sessionKey(sessionID, keyCurrentProjectID), value)
	r.store.Set(sessionKey(sessionID, keyLegacyProjectID), value)
}

// ResolveProjectID resolves the project identifier by trying, in fixed
// priority order, the canonical key, the id embedded in the project draft
// record, and the legacy key. The first non-empty value wins; validation of
// the value is left to the caller.
func (r *repository) ResolveProjectID(sessionID string) (string, bool) {
	if exists, value := r.store.Get(sessionKey(sessionID, keyCurrentProjectID)); exists &&
		strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), true
	}

	if draft, ok := r.GetProjectDraft(sessionID); ok && draft.ID > 0 {
		return strconv.FormatInt(draft.ID, 10), true
	}

	if exists, value := r.store.Get(sessionKey(sessionID, keyLegacyProjectID)); exists &&
		strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), true
	}

	return "", false
}

// SaveProjectDraft persists the wizard form state for the session.
func (r *repository) SaveProjectDraft(sessionID string, draft ProjectDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	r.store.Set(sessionKey(sessionID, keyProjectData), string(data))
	return nil
}

// GetProjectDraft retrieves the wizard form state for the session.
func (r *repository) GetProjectDraft(sessionID string) (*ProjectDraft, bool) {
	exists, data := r.store.Get(sessionKey(sessionID, keyProjectData))
	if !exists {
		return nil, false
	}

	var draft ProjectDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to parse project draft record", log.Error(err))
		return nil, false
	}
	return &draft, true
}

// SaveTokenSet persists the token set obtained from the exchange.
func (r *repository) SaveTokenSet(sessionID string, tokens OAuthTokenSet) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	r.store.Set(sessionKey(sessionID, keyTokenSet), string(data))
	return nil
}

// GetTokenSet retrieves the token set for the session.
func (r *repository) GetTokenSet(sessionID string) (*OAuthTokenSet, bool) {
	exists, data := r.store.Get(sessionKey(sessionID, keyTokenSet))
	if !exists {
		return nil, false
	}

	var tokens OAuthTokenSet
	if err := json.Unmarshal([]byte(data), &tokens); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to parse token set record", log.Error(err))
		return nil, false
	}
	return &tokens, true
}

// SaveImportResult persists the import outcome for the session.
func (r *repository) SaveImportResult(sessionID string, result ImportResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	r.store.Set(sessionKey(sessionID, keyImportResult), string(data))
	return nil
}

// GetImportResult retrieves the import outcome for the session.
func (r *repository) GetImportResult(sessionID string) (*ImportResult, bool) {
	exists, data := r.store.Get(sessionKey(sessionID, keyImportResult))
	if !exists {
		return nil, false
	}

	var result ImportResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to parse import result record", log.Error(err))
		return nil, false
	}
	return &result, true
}

// SetResumeStep persists the one-shot wizard resume step marker.
func (r *repository) SetResumeStep(sessionID string, step int) {
	r.store.Set(sessionKey(sessionID, keyResumeStep), strconv.Itoa(step))
}

// ConsumeResumeStep reads and deletes the resume step marker in one step.
func (r *repository) ConsumeResumeStep(sessionID string) (int, bool) {
	key := sessionKey(sessionID, keyResumeStep)
	exists, value := r.store.Get(key)
	r.store.Delete(key)
	if !exists {
		return 0, false
	}

	step, err := strconv.Atoi(value)
	if err != nil || step <= 0 {
		return 0, false
	}
	return step, true
}

// ClearSession removes every record held for the given session.
func (r *repository) ClearSession(sessionID string) {
	for _, key := range []string{
		keyCSRFToken,
		keyPendingAuthorization,
		keyProjectData,
		keyCurrentProjectID,
		keyLegacyProjectID,
		keyTokenSet,
		keyImportResult,
		keyResumeStep,
	} {
		r.store.Delete(sessionKey(sessionID, key))
	}
}
