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

const (
	// keyCSRFToken stores the single-use CSRF state token of the pending flow.
	keyCSRFToken = "connect_csrf_token"
	// keyPendingAuthorization stores the pending authorization record.
	keyPendingAuthorization = "pending_authorization"
	// keyProjectData stores the serialized project draft. Its embedded id is
	// the second lookup location for the project identifier.
	keyProjectData = "project_data"
	// keyCurrentProjectID is the canonical project identifier key.
	keyCurrentProjectID = "current_project_id"
	// keyLegacyProjectID is the legacy project identifier key. Older wizard
	// versions wrote only this key; kept as a compatibility shim.
	keyLegacyProjectID = "project_id"
	// keyTokenSet stores the token set obtained from the exchange.
	keyTokenSet = "oauth_token_set"
	// keyImportResult stores the outcome of the completed import.
	keyImportResult = "import_result"
	// keyResumeStep stores the one-shot wizard resume step marker.
	keyResumeStep = "setup_resume_step"
)
