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

package connector

import "github.com/sellsight/sellsight/internal/session"

// StartAuthorizationRequest represents the request to start an authorization flow.
type StartAuthorizationRequest struct {
	Name         string `json:"name"`
	Persona      string `json:"persona"`
	Context      string `json:"context"`
	Industry     string `json:"industry"`
	CurrentStep  int    `json:"current_step"`
	ResourceType string `json:"resource_type"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

// StartAuthorizationResult represents the outcome of a started flow.
type StartAuthorizationResult struct {
	AuthorizeURL string `json:"authorize_url"`
	ProjectID    int64  `json:"project_id"`
}

// CallbackRequest carries the query parameters of a callback invocation.
type CallbackRequest struct {
	Code       string
	State      string
	ErrorParam string
}

// CallbackResult represents the terminal outcome of one callback run.
type CallbackResult struct {
	State           FlowState     `json:"state"`
	Reason          FailureReason `json:"reason,omitempty"`
	ResumeStep      int           `json:"resume_step,omitempty"`
	ImportedRecords int           `json:"imported_records,omitempty"`
}

// ResumeState represents the wizard state restored on mount.
type ResumeState struct {
	Step                  int                   `json:"step"`
	Draft                 *session.ProjectDraft `json:"draft,omitempty"`
	ImportResult          *session.ImportResult `json:"import_result,omitempty"`
	TokenPresent          bool                  `json:"token_present"`
	SuccessDisplaySeconds int                   `json:"success_display_seconds,omitempty"`
}
