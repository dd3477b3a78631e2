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

package project_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sellsight/sellsight/internal/project"
	"github.com/sellsight/sellsight/tests/mocks/projectmock"
)

type ProjectHandlerTestSuite struct {
	suite.Suite
	serviceMock *projectmock.ProjectServiceInterfaceMock
	handler     *project.ProjectHandler
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.serviceMock = projectmock.NewProjectServiceInterfaceMock(suite.T())
	suite.handler = project.NewProjectHandler(suite.serviceMock)
}

func patchStepRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/projects/"+id, strings.NewReader(body))
	req.SetPathValue("id", id)
	return req
}

func (suite *ProjectHandlerTestSuite) TestProjectPatchRequestSuccess() {
	suite.serviceMock.On("UpdateProjectStep", int64(42), 3).Return(nil).Once()

	rec := httptest.NewRecorder()
	suite.handler.HandleProjectPatchRequest(rec, patchStepRequest("42", `{"current_step":3}`))

	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *ProjectHandlerTestSuite) TestProjectPatchRequestInvalidID() {
	rec := httptest.NewRecorder()
	suite.handler.HandleProjectPatchRequest(rec, patchStepRequest("abc", `{"current_step":3}`))

	suite.Equal(http.StatusBadRequest, rec.Code)

	var errResp map[string]string
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&errResp))
	suite.Equal(project.ErrorInvalidProjectID.Code, errResp["code"])
	suite.serviceMock.AssertNotCalled(suite.T(), "UpdateProjectStep")
}

func (suite *ProjectHandlerTestSuite) TestProjectPatchRequestMalformedBody() {
	rec := httptest.NewRecorder()
	suite.handler.HandleProjectPatchRequest(rec, patchStepRequest("42", `{not json`))

	suite.Equal(http.StatusBadRequest, rec.Code)

	var errResp map[string]string
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&errResp))
	suite.Equal(project.ErrorInvalidRequestFormat.Code, errResp["code"])
	suite.serviceMock.AssertNotCalled(suite.T(), "UpdateProjectStep")
}

func (suite *ProjectHandlerTestSuite) TestProjectPatchRequestNotFound() {
	suite.serviceMock.On("UpdateProjectStep", int64(42), 3).
		Return(&project.ErrorProjectNotFound).Once()

	rec := httptest.NewRecorder()
	suite.handler.HandleProjectPatchRequest(rec, patchStepRequest("42", `{"current_step":3}`))

	suite.Equal(http.StatusNotFound, rec.Code)
}
