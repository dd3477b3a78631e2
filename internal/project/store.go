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
	"errors"
	"fmt"
	"time"

	"github.com/sellsight/sellsight/internal/system/database/provider"
	"github.com/sellsight/sellsight/internal/system/log"
)

// ErrProjectNotFound is returned by the store when no project matches the id.
var ErrProjectNotFound = errors.New("project not found")

// projectStoreInterface defines the interface for project store operations.
type projectStoreInterface interface {
	CreateProject(prj Project) (int64, error)
	GetProject(projectID int64) (*Project, error)
	UpdateProjectStep(projectID int64, step int) error
	DeleteProject(projectID int64) error
}

// projectStore is the default implementation of projectStoreInterface.
type projectStore struct {
	dbProvider provider.DBProviderInterface
}

// newProjectStore creates a new instance of projectStore.
func newProjectStore() projectStoreInterface {
	return &projectStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateProject inserts a new project and returns its generated identifier.
func (s *projectStore) CreateProject(prj Project) (int64, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCreateProject, prj.Name, prj.Persona, prj.Context,
		prj.Industry, prj.CurrentStep, prj.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	projectID, err := parseInt64Column(results[0], "project_id")
	if err != nil {
		return 0, fmt.Errorf("failed to read generated project id: %w", err)
	}
	return projectID, nil
}

// GetProject retrieves a specific project by its ID from the database.
func (s *projectStore) GetProject(projectID int64) (*Project, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetProjectByID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrProjectNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildProjectFromResultRow(results[0])
}

// UpdateProjectStep updates the current wizard step recorded for the project.
func (s *projectStore) UpdateProjectStep(projectID int64, step int) error {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateProjectStep, projectID, step)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject deletes the project from the database.
func (s *projectStore) DeleteProject(projectID int64) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ProjectStore"))

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteProjectByID, projectID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("project not found", log.Int64(log.LoggerKeyProjectID, projectID))
	}

	return nil
}

func buildProjectFromResultRow(row map[string]interface{}) (*Project, error) {
	projectID, err := parseInt64Column(row, "project_id")
	if err != nil {
		return nil, err
	}

	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	persona, _ := row["persona"].(string)
	context, _ := row["context"].(string)
	industry, _ := row["industry"].(string)

	currentStep, err := parseInt64Column(row, "current_step")
	if err != nil {
		return nil, err
	}

	prj := &Project{
		ID:          projectID,
		Name:        name,
		Persona:     persona,
		Context:     context,
		Industry:    industry,
		CurrentStep: int(currentStep),
	}

	switch created := row["created_at"].(type) {
	case time.Time:
		prj.CreatedAt = created
	case string:
		if parsed, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
			prj.CreatedAt = parsed
		}
	}

	return prj, nil
}

// parseInt64Column reads an integer column that drivers may surface as
// different Go types.
func parseInt64Column(row map[string]interface{}, column string) (int64, error) {
	switch value := row[column].(type) {
	case int64:
		return value, nil
	case int:
		return int64(value), nil
	case float64:
		return int64(value), nil
	default:
		return 0, fmt.Errorf("failed to parse %s as integer", column)
	}
}
