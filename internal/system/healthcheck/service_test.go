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

package healthcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sellsight/sellsight/internal/system/database/client"
	"github.com/sellsight/sellsight/internal/system/database/model"
	"github.com/sellsight/sellsight/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	dbProvider *databasemock.MockDBProvider
	service    HealthCheckServiceInterface
}

func TestHealthCheckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.dbProvider = &databasemock.MockDBProvider{}
	suite.service = &healthCheckService{dbProvider: suite.dbProvider}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessAllUp() {
	status := suite.service.CheckReadiness()

	suite.Equal(StatusUp, status.Status)
	suite.Require().Len(status.ServiceStatus, 2)
	suite.Equal(StatusUp, status.ServiceStatus[0].Status)
	suite.Equal(StatusUp, status.ServiceStatus[1].Status)
	suite.Equal([]string{"identity", "runtime"}, suite.dbProvider.GetDBClientCalls)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessRuntimeDBDown() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		if dbName == "runtime" {
			return nil, errors.New("connection refused")
		}
		return &databasemock.MockDBClient{}, nil
	}

	status := suite.service.CheckReadiness()

	suite.Equal(StatusDown, status.Status)
	suite.Equal(StatusUp, status.ServiceStatus[0].Status)
	suite.Equal(StatusDown, status.ServiceStatus[1].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessQueryFailure() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return &databasemock.MockDBClient{
			MockQuery: func(query model.DBQuery, args ...interface{}) (
				[]map[string]interface{}, error) {
				return nil, errors.New("database locked")
			},
		}, nil
	}

	status := suite.service.CheckReadiness()

	suite.Equal(StatusDown, status.Status)
}
