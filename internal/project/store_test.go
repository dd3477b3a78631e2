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
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sellsight/sellsight/internal/system/database/client"
	"github.com/sellsight/sellsight/internal/system/database/model"
	"github.com/sellsight/sellsight/tests/mocks/databasemock"
)

type ProjectStoreTestSuite struct {
	suite.Suite
	dbClient   *databasemock.MockDBClient
	dbProvider *databasemock.MockDBProvider
	store      projectStoreInterface
}

func TestProjectStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectStoreTestSuite))
}

func (suite *ProjectStoreTestSuite) SetupTest() {
	suite.dbClient = &databasemock.MockDBClient{}
	suite.dbProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.dbClient, nil
		},
	}
	suite.store = &projectStore{dbProvider: suite.dbProvider}
}

func (suite *ProjectStoreTestSuite) TestCreateProject() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return []map[string]interface{}{{"project_id": int64(42)}}, nil
	}

	projectID, err := suite.store.CreateProject(Project{
		Name:        "Q1 Report",
		Persona:     "Analyst",
		CurrentStep: 2,
		CreatedAt:   time.Now().UTC(),
	})

	suite.Require().NoError(err)
	suite.Equal(int64(42), projectID)
	suite.Require().Len(suite.dbClient.QueryCalls, 1)
	suite.Equal(queryCreateProject.ID, suite.dbClient.QueryCalls[0].Query.ID)
	suite.Equal("Q1 Report", suite.dbClient.QueryCalls[0].Args[0])
}

func (suite *ProjectStoreTestSuite) TestCreateProjectQueryFailure() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return nil, errors.New("database unavailable")
	}

	_, err := suite.store.CreateProject(Project{Name: "Q1 Report"})

	suite.Error(err)
}

func (suite *ProjectStoreTestSuite) TestGetProject() {
	createdAt := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return []map[string]interface{}{{
			"project_id":   int64(42),
			"name":         "Q1 Report",
			"persona":      "Analyst",
			"context":      "Quarterly revenue review",
			"industry":     "Retail",
			"current_step": int64(4),
			"created_at":   createdAt,
		}}, nil
	}

	prj, err := suite.store.GetProject(42)

	suite.Require().NoError(err)
	suite.Equal(int64(42), prj.ID)
	suite.Equal("Q1 Report", prj.Name)
	suite.Equal(4, prj.CurrentStep)
	suite.Equal(createdAt, prj.CreatedAt)
}

func (suite *ProjectStoreTestSuite) TestGetProjectParsesCreatedAtString() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return []map[string]interface{}{{
			"project_id":   int64(42),
			"name":         "Q1 Report",
			"current_step": int64(1),
			"created_at":   "2025-01-15T09:30:00Z",
		}}, nil
	}

	prj, err := suite.store.GetProject(42)

	suite.Require().NoError(err)
	suite.Equal(2025, prj.CreatedAt.Year())
}

func (suite *ProjectStoreTestSuite) TestGetProjectNotFound() {
	_, err := suite.store.GetProject(404)

	suite.ErrorIs(err, ErrProjectNotFound)
}

func (suite *ProjectStoreTestSuite) TestUpdateProjectStep() {
	suite.dbClient.MockExecute = func(query model.DBQuery, args ...interface{}) (int64, error) {
		return 1, nil
	}

	err := suite.store.UpdateProjectStep(42, 3)

	suite.Require().NoError(err)
	suite.Require().Len(suite.dbClient.ExecuteCalls, 1)
	suite.Equal([]interface{}{int64(42), 3}, suite.dbClient.ExecuteCalls[0].Args)
}

func (suite *ProjectStoreTestSuite) TestUpdateProjectStepNotFound() {
	err := suite.store.UpdateProjectStep(404, 3)

	suite.ErrorIs(err, ErrProjectNotFound)
}

func (suite *ProjectStoreTestSuite) TestDeleteProjectIsIdempotent() {
	err := suite.store.DeleteProject(404)

	suite.NoError(err)
}
