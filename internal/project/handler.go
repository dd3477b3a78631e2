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

package project

import (
	"encoding/json"
	"net/http"
	"strconv"

	serverconst "github.com/sellsight/sellsight/internal/system/constants"
	"github.com/sellsight/sellsight/internal/system/error/apierror"
	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	"github.com/sellsight/sellsight/internal/system/log"
	sysutils "github.com/sellsight/sellsight/internal/system/utils"
)

// projectHandler is the handler for project management operations.
type projectHandler struct {
	projectService ProjectServiceInterface
}

// newProjectHandler creates a new instance of projectHandler.
func newProjectHandler(projectService ProjectServiceInterface) *projectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

// HandleProjectPostRequest handles the create project request.
func (ph *projectHandler) HandleProjectPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectHandler"))

	createRequest, err := sysutils.DecodeJSONBody[CreateProjectRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat, logger)
		return
	}

	createdProject, svcErr := ph.projectService.CreateProject(*createRequest)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if encodeErr := json.NewEncoder(w).Encode(createdProject); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleProjectGetRequest handles the get project request.
func (ph *projectHandler) HandleProjectGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectHandler"))

	projectID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidProjectID, logger)
		return
	}

	prj, svcErr := ph.projectService.GetProject(projectID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(prj); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleProjectPatchRequest handles the update project step request.
func (ph *projectHandler) HandleProjectPatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectHandler"))

	projectID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidProjectID, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[UpdateProjectStepRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat, logger)
		return
	}

	if svcErr := ph.projectService.UpdateProjectStep(projectID, updateRequest.CurrentStep); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleProjectDeleteRequest handles the delete project request.
func (ph *projectHandler) HandleProjectDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectHandler"))

	projectID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidProjectID, logger)
		return
	}

	if svcErr := ph.projectService.DeleteProject(projectID); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceErrorResponse writes an error response based on the service error type.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
	}
	w.WriteHeader(statusCode)

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

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorProjectNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
