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

// Package project provides the implementation for analysis project management operations.
package project

import (
	"errors"
	"strings"
	"time"

	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	"github.com/sellsight/sellsight/internal/system/log"
)

// ProjectServiceInterface defines the interface for the project service.
type ProjectServiceInterface interface {
	CreateProject(request CreateProjectRequest) (*Project, *serviceerror.ServiceError)
	GetProject(projectID int64) (*Project, *serviceerror.ServiceError)
	UpdateProjectStep(projectID int64, step int) *serviceerror.ServiceError
	DeleteProject(projectID int64) *serviceerror.ServiceError
}

// projectService is the default implementation of the ProjectServiceInterface.
type projectService struct {
	projectStore projectStoreInterface
}

// NewProjectService creates a new instance of the project service.
func NewProjectService() ProjectServiceInterface {
	return &projectService{
		projectStore: newProjectStore(),
	}
}

// CreateProject creates a new analysis project and returns it with its
// generated identifier.
func (ps *projectService) CreateProject(request CreateProjectRequest) (*Project, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectService"))

	if strings.TrimSpace(request.Name) == "" {
		return nil, &ErrorEmptyProjectName
	}

	prj := Project{
		Name:        strings.TrimSpace(request.Name),
		Persona:     strings.TrimSpace(request.Persona),
		Context:     strings.TrimSpace(request.Context),
		Industry:    strings.TrimSpace(request.Industry),
		CurrentStep: request.CurrentStep,
		CreatedAt:   time.Now().UTC(),
	}

	projectID, err := ps.projectStore.CreateProject(prj)
	if err != nil {
		logger.Error("Failed to create project", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	prj.ID = projectID

	return &prj, nil
}

// GetProject retrieves a project by its identifier.
func (ps *projectService) GetProject(projectID int64) (*Project, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectService"))

	if projectID <= 0 {
		return nil, &ErrorInvalidProjectID
	}

	prj, err := ps.projectStore.GetProject(projectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, &ErrorProjectNotFound
		}
		logger.Error("Failed to get project", log.Int64(log.LoggerKeyProjectID, projectID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return prj, nil
}

// UpdateProjectStep records the wizard step the project has reached.
func (ps *projectService) UpdateProjectStep(projectID int64, step int) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectService"))

	if projectID <= 0 {
		return &ErrorInvalidProjectID
	}

	if err := ps.projectStore.UpdateProjectStep(projectID, step); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return &ErrorProjectNotFound
		}
		logger.Error("Failed to update project step", log.Int64(log.LoggerKeyProjectID, projectID),
			log.Error(err))
		return &ErrorInternalServerError
	}

	return nil
}

// DeleteProject deletes a project by its identifier.
func (ps *projectService) DeleteProject(projectID int64) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectService"))

	if projectID <= 0 {
		return &ErrorInvalidProjectID
	}

	if err := ps.projectStore.DeleteProject(projectID); err != nil {
		logger.Error("Failed to delete project", log.Int64(log.LoggerKeyProjectID, projectID),
			log.Error(err))
		return &ErrorInternalServerError
	}

	return nil
}
