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

// FlowState represents the state of a callback handling run.
type FlowState string

const (
	// FlowStateValidating is the state validating the callback parameters.
	FlowStateValidating FlowState = "validating"
	// FlowStateExchanging is the state exchanging the authorization code for tokens.
	FlowStateExchanging FlowState = "exchanging"
	// FlowStateImporting is the state importing provider data for the project.
	FlowStateImporting FlowState = "importing"
	// FlowStateSuccess is the terminal state of a completed flow.
	FlowStateSuccess FlowState = "success"
	// FlowStateError is the terminal state of a failed flow.
	FlowStateError FlowState = "error"
)

// FailureReason identifies why a callback run ended in the error state.
type FailureReason string

const (
	// FailureReasonAuthorizationDenied is set when the authorization server
	// returned an error instead of a code.
	FailureReasonAuthorizationDenied FailureReason = "authorization_denied"
	// FailureReasonMissingCode is set when the callback carried no authorization code.
	FailureReasonMissingCode FailureReason = "missing_code"
	// FailureReasonMissingState is set when neither the callback nor the session
	// store held a state token, or the stored token is gone under the strict policy.
	FailureReasonMissingState FailureReason = "missing_state"
	// FailureReasonCSRFMismatch is set when the echoed state differs from the stored token.
	FailureReasonCSRFMismatch FailureReason = "csrf_mismatch"
	// FailureReasonMissingProject is set when no project identifier could be resolved.
	FailureReasonMissingProject FailureReason = "missing_project"
	// FailureReasonTokenExchangeFailed is set when the token exchange call failed.
	FailureReasonTokenExchangeFailed FailureReason = "token_exchange_failed"
	// FailureReasonInvalidTokenResponse is set when the exchange returned no access token.
	FailureReasonInvalidTokenResponse FailureReason = "invalid_token_response"
	// FailureReasonInvalidProjectID is set when the resolved identifier is not a
	// positive integer.
	FailureReasonInvalidProjectID FailureReason = "invalid_project_id"
	// FailureReasonImportFailed is set when the data import call failed.
	FailureReasonImportFailed FailureReason = "import_failed"
)

const (
	// queryParamCode is the authorization code callback query parameter.
	queryParamCode = "code"
	// queryParamState is the echoed state callback query parameter.
	queryParamState = "state"
	// queryParamError is the denial callback query parameter.
	queryParamError = "error"
	// queryParamStep is the explicit wizard step query parameter.
	queryParamStep = "step"

	// requestParamClientID is the client id parameter of the authorization URL.
	requestParamClientID = "client_id"
	// requestParamRedirectURI is the redirect uri parameter of the authorization URL.
	requestParamRedirectURI = "redirect_uri"
	// requestParamResponseType is the response type parameter of the authorization URL.
	requestParamResponseType = "response_type"
	// requestParamScope is the scope parameter of the authorization URL.
	requestParamScope = "scope"
	// responseTypeCode is the authorization code response type.
	responseTypeCode = "code"

	// sessionCookieName is the wizard session cookie name.
	sessionCookieName = "SELLSIGHT_WIZARD_SESSION"

	// csrfTokenEntropyBytes is the entropy of a generated state token.
	csrfTokenEntropyBytes = 32

	// defaultFirstStep is the wizard step used when nothing else applies.
	defaultFirstStep = 1
	// defaultDataImportStep is the wizard step the flow returns to when the
	// draft does not record one.
	defaultDataImportStep = 3

	// environmentProduction disables every development-only fallback.
	environmentProduction = "production"

	// setupRoute is the wizard route callbacks redirect back to.
	setupRoute = "/setup"
	// connectionStatusParam reports the callback outcome on the redirect.
	connectionStatusParam = "connection"
	// connectionReasonParam carries the failure reason on the redirect.
	connectionReasonParam = "reason"
)
