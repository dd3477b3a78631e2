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

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/sellsight/sellsight/internal/system/constants"
	"github.com/sellsight/sellsight/internal/system/error/apierror"
	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	"github.com/sellsight/sellsight/internal/system/log"
	sysutils "github.com/sellsight/sellsight/internal/system/utils"
)

// connectorHandler is the handler for connector flow operations.
type connectorHandler struct {
	connectorService ConnectorServiceInterface
}

// newConnectorHandler creates a new instance of connectorHandler.
func newConnectorHandler(connectorService ConnectorServiceInterface) *connectorHandler {
	return &connectorHandler{
		connectorService: connectorService,
	}
}

// wizardSessionID returns the wizard session id from the request cookie,
// creating the cookie when absent. The cookie scopes every session store
// record of the flow.
func wizardSessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := sysutils.GenerateUUID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// HandleAuthorizePostRequest handles the flow start request and redirects the
// browser to the provider authorization URL.
func (ch *connectorHandler) HandleAuthorizePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ConnectorHandler"))

	sessionID := wizardSessionID(w, r)

	startRequest, err := sysutils.DecodeJSONBody[StartAuthorizationRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat, logger)
		return
	}

	result, svcErr := ch.connectorService.StartAuthorization(sessionID, *startRequest)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	// Top level navigation to the authorization server; the body carries the
	// target for clients driving the redirect themselves.
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.Header().Set(serverconst.LocationHeaderName, result.AuthorizeURL)
	w.WriteHeader(http.StatusFound)

	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
	}
}

// HandleCallbackRequest handles the fixed callback route the authorization
// server redirects back to, runs the state machine and sends the browser back
// into the wizard with the outcome.
func (ch *connectorHandler) HandleCallbackRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ConnectorHandler"))

	sessionID := wizardSessionID(w, r)
	query := r.URL.Query()

	result := ch.connectorService.HandleCallback(sessionID, CallbackRequest{
		Code:       query.Get(queryParamCode),
		State:      query.Get(queryParamState),
		ErrorParam: query.Get(queryParamError),
	})

	redirectParams := map[string]string{
		connectionStatusParam: string(result.State),
	}
	if result.State == FlowStateError {
		redirectParams[connectionReasonParam] = string(result.Reason)
	}

	redirectURL, err := sysutils.GetURIWithQueryParams(setupRoute, redirectParams)
	if err != nil {
		logger.Error("Failed to build wizard redirect URL", log.Error(err))
		redirectURL = setupRoute
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// HandleSetupGetRequest handles the wizard mount request and returns the
// restored step and draft state.
func (ch *connectorHandler) HandleSetupGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ConnectorHandler"))

	sessionID := wizardSessionID(w, r)
	resumeState := ch.connectorService.ResumeSetup(sessionID, r.URL.Query().Get(queryParamStep))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(resumeState); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// writeServiceErrorResponse writes an error response based on the service error type.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError,
	logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	if svcErr.Type == serviceerror.ClientErrorType {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
