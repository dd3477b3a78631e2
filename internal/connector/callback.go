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
	"strconv"
	"strings"
	"time"

	"github.com/sellsight/sellsight/internal/commerce"
	"github.com/sellsight/sellsight/internal/session"
	"github.com/sellsight/sellsight/internal/system/log"
)

// callbackRun is the one-shot state machine handling a single callback
// invocation. States advance strictly in sequence
// (Validating -> Exchanging -> Importing -> Success) and any failure moves to
// the terminal error state. A run never retries and never handles twice: the
// handled guard makes a duplicate Run call replay the recorded outcome instead
// of re-executing side effects.
type callbackRun struct {
	service   *connectorService
	sessionID string
	request   CallbackRequest
	logger    *log.Logger

	state   FlowState
	handled bool
	result  *CallbackResult

	projectIDRaw string
	projectID    int64
	accessToken  string
}

// newCallbackRun creates the state machine for one callback invocation.
func newCallbackRun(service *connectorService, sessionID string, request CallbackRequest) *callbackRun {
	return &callbackRun{
		service:   service,
		sessionID: sessionID,
		request:   request,
		state:     FlowStateValidating,
		logger: log.GetLogger().With(
			log.String(log.LoggerKeyComponentName, "CallbackHandler"),
			log.String(log.LoggerKeySessionID, log.MaskString(sessionID))),
	}
}

// Run drives the state machine to a terminal state and returns the outcome.
func (r *callbackRun) Run() *CallbackResult {
	if r.handled {
		r.logger.Warn("Duplicate callback invocation suppressed",
			log.String(log.LoggerKeyFlowState, string(r.state)))
		return r.result
	}
	r.handled = true

	if result := r.validate(); result != nil {
		return result
	}
	if result := r.resolveProject(); result != nil {
		return result
	}
	if result := r.exchange(); result != nil {
		return result
	}
	if result := r.importData(); result != nil {
		return result
	}
	return r.succeed()
}

// fail moves the run to the terminal error state.
func (r *callbackRun) fail(reason FailureReason) *CallbackResult {
	r.logger.Error("Callback flow failed",
		log.String(log.LoggerKeyFlowState, string(r.state)),
		log.String("reason", string(reason)))
	r.state = FlowStateError
	r.result = &CallbackResult{
		State:  FlowStateError,
		Reason: reason,
	}
	return r.result
}

// validate checks the callback parameters and consumes the stored CSRF token.
// The token is deleted on read whether or not it matches, so a replayed
// callback can never validate against it again.
func (r *callbackRun) validate() *CallbackResult {
	if r.request.ErrorParam != "" {
		return r.fail(FailureReasonAuthorizationDenied)
	}
	if strings.TrimSpace(r.request.Code) == "" {
		return r.fail(FailureReasonMissingCode)
	}

	storedToken, tokenFound := r.service.sessionRepo.ConsumeCSRFToken(r.sessionID)
	receivedState := strings.TrimSpace(r.request.State)

	switch {
	case receivedState == "" && !tokenFound:
		return r.fail(FailureReasonMissingState)
	case tokenFound && receivedState != storedToken:
		return r.fail(FailureReasonCSRFMismatch)
	case receivedState != "" && !tokenFound:
		// A reload can clear the stored token while the state survives in the
		// URL. The strict policy denies; the lenient policy is a config opt-in.
		if !connectorConfig().AllowMissingStateToken {
			return r.fail(FailureReasonMissingState)
		}
		r.logger.Warn("State received with no stored token; lenient policy accepted the callback")
	}

	return nil
}

// resolveProject resolves the project identifier through the compatibility
// shim. A development fallback id may substitute outside production.
func (r *callbackRun) resolveProject() *CallbackResult {
	raw, found := r.service.sessionRepo.ResolveProjectID(r.sessionID)
	if !found {
		cfg := connectorConfig()
		if cfg.Environment != environmentProduction && cfg.DevFallbackProjectID > 0 {
			r.logger.Warn("No project identifier in session; development fallback applied",
				log.Int64(log.LoggerKeyProjectID, cfg.DevFallbackProjectID))
			raw = strconv.FormatInt(cfg.DevFallbackProjectID, 10)
		} else {
			return r.fail(FailureReasonMissingProject)
		}
	}

	r.projectIDRaw = raw
	return nil
}

// exchange trades the authorization code for a token set and persists it.
func (r *callbackRun) exchange() *CallbackResult {
	r.state = FlowStateExchanging

	tokenResp, svcErr := r.service.commerceService.ExchangeCodeForToken(
		r.request.Code, r.request.State)
	if svcErr != nil {
		if svcErr.Code == commerce.ErrorInvalidTokenResponse.Code {
			return r.fail(FailureReasonInvalidTokenResponse)
		}
		return r.fail(FailureReasonTokenExchangeFailed)
	}
	if strings.TrimSpace(tokenResp.AccessToken) == "" {
		return r.fail(FailureReasonInvalidTokenResponse)
	}

	accountID, svcErr := r.service.commerceService.FetchAccountID(tokenResp.AccessToken)
	if svcErr != nil {
		// The account id is informational; the flow proceeds without it.
		r.logger.Warn("Failed to fetch external account id",
			log.String("errorCode", svcErr.Code))
		accountID = ""
	}

	tokenSet := session.OAuthTokenSet{
		AccessToken:       tokenResp.AccessToken,
		RefreshToken:      tokenResp.RefreshToken,
		ExternalAccountID: accountID,
	}
	if err := r.service.sessionRepo.SaveTokenSet(r.sessionID, tokenSet); err != nil {
		r.logger.Error("Failed to persist token set", log.Error(err))
		return r.fail(FailureReasonTokenExchangeFailed)
	}

	r.accessToken = tokenResp.AccessToken
	return nil
}

// importData re-validates the project identifier and imports the requested
// resource for the pending date range.
func (r *callbackRun) importData() *CallbackResult {
	r.state = FlowStateImporting

	projectID, err := strconv.ParseInt(r.projectIDRaw, 10, 64)
	if err != nil || projectID <= 0 {
		return r.fail(FailureReasonInvalidProjectID)
	}
	r.projectID = projectID

	resource := "orders"
	fromDate, toDate := "", ""
	if pending, ok := r.service.sessionRepo.GetPendingAuthorization(r.sessionID); ok {
		resource = pending.ResourceType
		fromDate = pending.FromDate
		toDate = pending.ToDate
	}

	summary, svcErr := r.service.commerceService.ImportData(
		r.accessToken, resource, fromDate, toDate, projectID)
	if svcErr != nil {
		return r.fail(FailureReasonImportFailed)
	}

	result := session.ImportResult{
		Resource:    summary.Resource,
		RecordCount: summary.RecordCount,
		ImportedAt:  time.Now().UTC(),
	}
	if err := r.service.sessionRepo.SaveImportResult(r.sessionID, result); err != nil {
		r.logger.Error("Failed to persist import result", log.Error(err))
		return r.fail(FailureReasonImportFailed)
	}
	r.service.sessionRepo.ClearPendingAuthorization(r.sessionID)

	r.result = &CallbackResult{ImportedRecords: summary.RecordCount}
	return nil
}

// succeed records the resume step and finishes the run.
func (r *callbackRun) succeed() *CallbackResult {
	resumeStep := defaultDataImportStep
	if draft, ok := r.service.sessionRepo.GetProjectDraft(r.sessionID); ok && draft.CurrentStep > 0 {
		resumeStep = draft.CurrentStep
	}
	r.service.sessionRepo.SetResumeStep(r.sessionID, resumeStep)

	// The session marker drives the resume; the project row update keeps the
	// step visible outside the wizard session and must not fail the flow.
	if svcErr := r.service.projectService.UpdateProjectStep(r.projectID, resumeStep); svcErr != nil {
		r.logger.Warn("Failed to record wizard step on the project",
			log.String("errorCode", svcErr.Code))
	}

	r.state = FlowStateSuccess
	r.result = &CallbackResult{
		State:           FlowStateSuccess,
		ResumeStep:      resumeStep,
		ImportedRecords: r.result.ImportedRecords,
	}
	r.logger.Debug("Callback flow completed",
		log.Int64(log.LoggerKeyProjectID, r.projectID),
		log.Int("resumeStep", resumeStep))
	return r.result
}
