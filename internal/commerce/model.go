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

package commerce

import "encoding/json"

// TokenResponse represents the response from the provider token endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires"`
	Scope        string `json:"scope"`
}

// resourcePage represents one page of a paginated resource listing from the
// provider API. Record payloads stay opaque; only the external id is read out.
type resourcePage struct {
	Status     int               `json:"status"`
	Success    bool              `json:"success"`
	Data       []json.RawMessage `json:"data"`
	Pagination pageInfo          `json:"pagination"`
}

// pageInfo carries the provider's pagination cursor.
type pageInfo struct {
	Count       int `json:"count"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// ImportSummary reports the outcome of a completed resource import.
type ImportSummary struct {
	Resource    string `json:"resource"`
	RecordCount int    `json:"record_count"`
}
