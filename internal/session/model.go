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

package session

import "time"

// ProjectDraft holds the setup wizard form state that must survive the
// redirect to the external authorization server. The ID is immutable once
// assigned by the project service.
type ProjectDraft struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Persona     string `json:"persona"`
	Context     string `json:"context"`
	Industry    string `json:"industry"`
	CurrentStep int    `json:"current_step"`
}

// PendingAuthorization is the ephemeral record owned by the connector flow
// between initiation and callback. Its CSRF token is single-use.
type PendingAuthorization struct {
	CSRFToken    string    `json:"csrf_token"`
	ResourceType string    `json:"resource_type"`
	FromDate     string    `json:"from_date"`
	ToDate       string    `json:"to_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// OAuthTokenSet holds the credentials obtained from a successful token exchange.
type OAuthTokenSet struct {
	AccessToken       string `json:"access_token"`
	RefreshToken      string `json:"refresh_token,omitempty"`
	ExternalAccountID string `json:"external_account_id"`
}

// ImportResult records the outcome of a completed data import.
type ImportResult struct {
	Resource    string    `json:"resource"`
	RecordCount int       `json:"record_count"`
	ImportedAt  time.Time `json:"imported_at"`
}
