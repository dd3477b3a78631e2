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
	"testing"

	"github.com/stretchr/testify/suite"
)

// mockProjectStore is a mock implementation of the projectStoreInterface.
type mockProjectStore struct {
	// MockCreateProject defines the behavior for the CreateProject method.
	MockCreateProject func(prj Project) (int64, error)

	// MockGetProject defines the behavior for the GetProject method.
	MockGetProject func(projectID int64) (*Project, error)

	// MockUpdateProjectStep defines the behavior for the UpdateProjectStep method.
	MockUpdateProjectStep func(projectID int64, step int) error

	// MockDeleteProject defines the behavior for the DeleteProject method.
	MockDeleteProject func(projectID int64) error

	// CreateProjectCalls tracks the arguments passed to CreateProject.
	CreateProjectCalls []Project
}

func (m *mockProjectStore) CreateProject(prj Project) (int64, error) {
	m.CreateProjectCalls = append(m.CreateProjectCalls, prj)

	if m.MockCreateProject != nil {
		return m.MockCreateProject(prj)
	}
	return 1, nil
}

func (m *mockProjectStore) GetProject(projectID int64) (*Project, error) {
	if m.MockGetProject != nil {
		return m.MockGetProject(projectID)
	}
	return nil, ErrProjectNotFound
}

func (m *mockProjectStore) UpdateProjectStep(projectID int64, step int) error {
	if m.MockUpdateProjectStep != nil {
		return m.MockUpdateProjectStep(projectID, step)
	}
	return nil
}

func (m *mockProjectStore) DeleteProject(projectID int64) error {
	if m.MockDeleteProject != nil {
		return m.MockDeleteProject(projectID)
	}
	return nil
}

type ProjectServiceTestSuite struct {
	suite.Suite
	storeMock *mockProjectStore
	service   ProjectServiceInterface
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.storeMock = &mockProjectStore{}
	suite.service = &projectService{projectStore: suite.storeMock}
}

func (suite *ProjectServiceTestSuite) TestCreateProject() {
	suite.storeMock.MockCreateProject = func(prj Project) (int64, error) {
		return 42, nil
	}

	prj, svcErr := suite.service.CreateProject(CreateProjectRequest{
		Name:        "  Q1 Report  ",
		Persona:     "Analyst",
		Industry:    "Retail",
		CurrentStep: 2,
	})

	suite.Require().Nil(svcErr)
	suite.Equal(int64(42), prj.ID)
	suite.Equal("Q1 Report", prj.Name)
	suite.Equal(2, prj.CurrentStep)
	suite.False(prj.CreatedAt.IsZero())
}

func (suite *ProjectServiceTestSuite) TestCreateProjectEmptyName() {
	prj, svcErr := suite.service.CreateProject(CreateProjectRequest{Name: "   "})

	suite.Nil(prj)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorEmptyProjectName.Code, svcErr.Code)
	suite.Empty(suite.storeMock.CreateProjectCalls)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectStoreFailure() {
	suite.storeMock.MockCreateProject = func(prj Project) (int64, error) {
		return 0, errors.New("database unavailable")
	}

	prj, svcErr := suite.service.CreateProject(CreateProjectRequest{Name: "Q1 Report"})

	suite.Nil(prj)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *ProjectServiceTestSuite) TestGetProject() {
	suite.storeMock.MockGetProject = func(projectID int64) (*Project, error) {
		return &Project{ID: projectID, Name: "Q1 Report"}, nil
	}

	prj, svcErr := suite.service.GetProject(42)

	suite.Require().Nil(svcErr)
	suite.Equal(int64(42), prj.ID)
}

func (suite *ProjectServiceTestSuite) TestGetProjectInvalidID() {
	prj, svcErr := suite.service.GetProject(0)

	suite.Nil(prj)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidProjectID.Code, svcErr.Code)
}

func (suite *ProjectServiceTestSuite) TestGetProjectNotFound() {
	prj, svcErr := suite.service.GetProject(404)

	suite.Nil(prj)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorProjectNotFound.Code, svcErr.Code)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStep() {
	updated := false
	suite.storeMock.MockUpdateProjectStep = func(projectID int64, step int) error {
		updated = true
		return nil
	}

	svcErr := suite.service.UpdateProjectStep(42, 3)

	suite.Nil(svcErr)
	suite.True(updated)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStepNotFound() {
	suite.storeMock.MockUpdateProjectStep = func(projectID int64, step int) error {
		return ErrProjectNotFound
	}

	svcErr := suite.service.UpdateProjectStep(404, 3)

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorProjectNotFound.Code, svcErr.Code)
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectInvalidID() {
	svcErr := suite.service.DeleteProject(-1)

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidProjectID.Code, svcErr.Code)
}
