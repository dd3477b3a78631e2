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

const (
	// requestParamClientID is the client id parameter of the token request.
	requestParamClientID = "client_id"
	// requestParamClientSecret is the client secret parameter of the token request.
	requestParamClientSecret = "client_secret"
	// requestParamRedirectURI is the redirect uri parameter of the token request.
	requestParamRedirectURI = "redirect_uri"
	// requestParamGrantType is the grant type parameter of the token request.
	requestParamGrantType = "grant_type"
	// requestParamCode is the authorization code parameter of the token request.
	requestParamCode = "code"
	// requestParamState is the echoed state parameter of the token request.
	requestParamState = "state"
	// grantTypeAuthorizationCode is the authorization code grant type.
	grantTypeAuthorizationCode = "authorization_code"

	// queryParamPage is the page number parameter of resource listing requests.
	queryParamPage = "page"
	// queryParamPerPage is the page size parameter of resource listing requests.
	queryParamPerPage = "per_page"
	// queryParamFromDate is the range start parameter of resource listing requests.
	queryParamFromDate = "from_date"
	// queryParamToDate is the range end parameter of resource listing requests.
	queryParamToDate = "to_date"

	// importPageSize is the page size requested from the provider API.
	importPageSize = 100
	// maxImportPages caps a single import run against a runaway pagination cursor.
	maxImportPages = 1000
)
