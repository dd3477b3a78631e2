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

// Package connector implements the OAuth2 authorization-code integration flow
// that connects a project to an external e-commerce account: flow initiation,
// callback handling and wizard resumption.
package connector

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sellsight/sellsight/internal/commerce"
	"github.com/sellsight/sellsight/internal/project"
	"github.com/sellsight/sellsight/internal/session"
	"github.com/sellsight/sellsight/internal/system/config"
	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	"github.com/sellsight/sellsight/internal/system/log"
	sysutils "github.com/sellsight/sellsight/internal/system/utils"
)

const loggerComponentName = "ConnectorService"

// dateLayout is the calendar date format of the import range.
const dateLayout = "2006-01-02"

// supportedResourceTypes lists the resource types a flow may request.
var supportedResourceTypes = []string{"orders", "products", "customers"}

// ConnectorServiceInterface defines the interface for the connector flow service.
type ConnectorServiceInterface interface {
	StartAuthorization(sessionID string, request StartAuthorizationRequest) (
		*StartAuthorizationResult, *serviceerror.ServiceError)
	HandleCallback(sessionID string, request CallbackRequest) *CallbackResult
	ResumeSetup(sessionID string, explicitStep string) *ResumeState
}

// connectorService is the default implementation of the ConnectorServiceInterface.
type connectorService struct {
	sessionRepo     session.RepositoryInterface
	projectService  project.ProjectServiceInterface
	commerceService commerce.CommerceServiceInterface
}

// NewConnectorService creates a new connector flow service over the given collaborators.
func NewConnectorService(sessionRepo session.RepositoryInterface,
	projectService project.ProjectServiceInterface,
	commerceService commerce.CommerceServiceInterface) ConnectorServiceInterface {
	return &connectorService{
		sessionRepo:     sessionRepo,
		projectService:  projectService,
		commerceService: commerceService,
	}
}

// connectorConfig returns the connector flow configuration from the runtime.
func connectorConfig() *config.ConnectorConfig {
	return &config.GetSellSightRuntime().Config.Connector
}

// StartAuthorization validates the request, creates the project draft, persists
// the pending authorization state and returns the authorization URL to redirect
// to. Side effects happen in strict order: nothing is persisted if validation
// or project creation fails.
func (s *connectorService) StartAuthorization(sessionID string,
	request StartAuthorizationRequest) (*StartAuthorizationResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, log.MaskString(sessionID)))

	if !slices.Contains(supportedResourceTypes, request.ResourceType) {
		return nil, &ErrorInvalidResourceType
	}
	if svcErr := validateDateRange(request.FromDate, request.ToDate); svcErr != nil {
		return nil, svcErr
	}

	createdProject, svcErr := s.projectService.CreateProject(project.CreateProjectRequest{
		Name:        request.Name,
		Persona:     request.Persona,
		Context:     request.Context,
		Industry:    request.Industry,
		CurrentStep: request.CurrentStep,
	})
	if svcErr != nil {
		logger.Error("Project creation failed before redirect",
			log.String("errorCode", svcErr.Code))
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, svcErr
		}
		return nil, &ErrorProjectCreationFailed
	}

	csrfToken, err := sysutils.GenerateSecureRandomString(csrfTokenEntropyBytes)
	if err != nil {
		logger.Error("Failed to generate state token", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	pending := session.PendingAuthorization{
		CSRFToken:    csrfToken,
		ResourceType: request.ResourceType,
		FromDate:     request.FromDate,
		ToDate:       request.ToDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessionRepo.SavePendingAuthorization(sessionID, pending); err != nil {
		logger.Error("Failed to persist pending authorization", log.Error(err))
		return nil, &ErrorSessionPersistenceFailed
	}
	s.sessionRepo.SaveProjectID(sessionID, createdProject.ID)

	draft := session.ProjectDraft{
		ID:          createdProject.ID,
		Name:        createdProject.Name,
		Persona:     createdProject.Persona,
		Context:     createdProject.Context,
		Industry:    createdProject.Industry,
		CurrentStep: request.CurrentStep,
	}
	if err := s.sessionRepo.SaveProjectDraft(sessionID, draft); err != nil {
		logger.Error("Failed to persist project draft", log.Error(err))
		return nil, &ErrorSessionPersistenceFailed
	}

	authorizeURL, svcErr := buildAuthorizeURL(csrfToken, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Authorization flow started",
		log.Int64(log.LoggerKeyProjectID, createdProject.ID),
		log.String("resourceType", request.ResourceType))
	return &StartAuthorizationResult{
		AuthorizeURL: authorizeURL,
		ProjectID:    createdProject.ID,
	}, nil
}

// HandleCallback runs the one-shot callback state machine for this invocation.
func (s *connectorService) HandleCallback(sessionID string, request CallbackRequest) *CallbackResult {
	run := newCallbackRun(s, sessionID, request)
	return run.Run()
}

// ResumeSetup restores the wizard state for a mounting session. The step is
// decided by fixed priority: explicit step parameter, consumed one-shot resume
// marker, draft current step, default first step. Draft fields are rehydrated
// regardless of which step source won.
func (s *connectorService) ResumeSetup(sessionID string, explicitStep string) *ResumeState {
	step := 0
	if parsed, err := strconv.Atoi(strings.TrimSpace(explicitStep)); err == nil && parsed > 0 {
		step = parsed
	} else if marker, ok := s.sessionRepo.ConsumeResumeStep(sessionID); ok {
		step = marker
	}

	draft, draftFound := s.sessionRepo.GetProjectDraft(sessionID)
	if step == 0 {
		if draftFound && draft.CurrentStep > 0 {
			step = draft.CurrentStep
		} else {
			step = defaultFirstStep
		}
	}

	state := &ResumeState{
		Step:                  step,
		SuccessDisplaySeconds: connectorConfig().SuccessDisplaySeconds,
	}
	if draftFound {
		state.Draft = draft
	}
	if result, ok := s.sessionRepo.GetImportResult(sessionID); ok {
		state.ImportResult = result
		s.refreshImportedRecordCount(sessionID, state)
	}
	if _, ok := s.sessionRepo.GetTokenSet(sessionID); ok {
		state.TokenPresent = true
	}
	return state
}

// refreshImportedRecordCount replaces the session-recorded count with the
// count actually stored for the project. The session value stands when the
// project identifier is unusable or the store lookup fails.
func (s *connectorService) refreshImportedRecordCount(sessionID string, state *ResumeState) {
	raw, found := s.sessionRepo.ResolveProjectID(sessionID)
	if !found {
		return
	}
	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || projectID <= 0 {
		return
	}

	count, svcErr := s.commerceService.GetImportedRecordCount(projectID, state.ImportResult.Resource)
	if svcErr != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
			log.String(log.LoggerKeySessionID, log.MaskString(sessionID))).
			Warn("Failed to count stored records for resume", log.String("errorCode", svcErr.Code))
		return
	}
	state.ImportResult.RecordCount = count
}

// validateDateRange requires both dates present, parseable and ordered.
func validateDateRange(fromDate, toDate string) *serviceerror.ServiceError {
	if strings.TrimSpace(fromDate) == "" || strings.TrimSpace(toDate) == "" {
		return &ErrorInvalidDateRange
	}

	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return &ErrorInvalidDateRange
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return &ErrorInvalidDateRange
	}
	if from.After(to) {
		return &ErrorInvalidDateRange
	}
	return nil
}

// buildAuthorizeURL constructs the provider authorization URL with the state token.
func buildAuthorizeURL(csrfToken string, logger *log.Logger) (string, *serviceerror.ServiceError) {
	cfg := &config.GetSellSightRuntime().Config.Commerce

	authorizeURL, err := sysutils.GetURIWithQueryParams(cfg.AuthURL, map[string]string{
		requestParamClientID:     cfg.ClientID,
		requestParamRedirectURI:  cfg.RedirectURI,
		requestParamResponseType: responseTypeCode,
		requestParamScope:        strings.Join(cfg.Scopes, " "),
		queryParamState:          csrfToken,
	})
	if err != nil {
		logger.Error("Failed to build authorization URL", log.Error(err))
		return "", &ErrorInternalServerError
	}
	return authorizeURL, nil
}
