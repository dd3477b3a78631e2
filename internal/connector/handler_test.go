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
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sellsight/sellsight/internal/commerce"
	"github.com/sellsight/sellsight/internal/project"
	"github.com/sellsight/sellsight/internal/session"
	"github.com/sellsight/sellsight/internal/session/store"
	"github.com/sellsight/sellsight/internal/system/config"
	"github.com/sellsight/sellsight/tests/mocks/commercemock"
	"github.com/sellsight/sellsight/tests/mocks/projectmock"
)

type ConnectorHandlerTestSuite struct {
	suite.Suite
	sessionRepo  session.RepositoryInterface
	projectMock  *projectmock.ProjectServiceInterfaceMock
	commerceMock *commercemock.CommerceServiceInterfaceMock
	handler      *connectorHandler
}

func TestConnectorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectorHandlerTestSuite))
}

func (suite *ConnectorHandlerTestSuite) SetupTest() {
	initTestRuntime(config.ConnectorConfig{Environment: "production"})

	suite.sessionRepo = session.NewRepository(store.NewSessionDataStore(time.Minute))
	suite.projectMock = projectmock.NewProjectServiceInterfaceMock(suite.T())
	suite.commerceMock = commercemock.NewCommerceServiceInterfaceMock(suite.T())
	service := NewConnectorService(suite.sessionRepo, suite.projectMock, suite.commerceMock)
	suite.handler = newConnectorHandler(service)
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: value}
}

func (suite *ConnectorHandlerTestSuite) TestAuthorizePostSetsSessionCookie() {
	suite.projectMock.On("CreateProject", mock.Anything).
		Return(&project.Project{ID: 42, Name: "Q1 Report"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/connector/authorize", strings.NewReader(
		`{"name":"Q1 Report","resource_type":"orders","from_date":"2025-01-01","to_date":"2025-01-31"}`))
	rec := httptest.NewRecorder()

	suite.handler.HandleAuthorizePostRequest(rec, req)

	suite.Equal(http.StatusFound, rec.Code)

	var wizardCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			wizardCookie = cookie
		}
	}
	suite.Require().NotNil(wizardCookie)
	suite.NotEmpty(wizardCookie.Value)
	suite.True(wizardCookie.HttpOnly)
	suite.Equal(http.SameSiteLaxMode, wizardCookie.SameSite)

	location := rec.Header().Get("Location")
	suite.Require().NotEmpty(location)
	parsed, err := url.Parse(location)
	suite.Require().NoError(err)
	suite.Equal("client123", parsed.Query().Get("client_id"))

	var result StartAuthorizationResult
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&result))
	suite.Equal(location, result.AuthorizeURL)
	suite.Equal(int64(42), result.ProjectID)
}

func (suite *ConnectorHandlerTestSuite) TestAuthorizePostReusesExistingCookie() {
	suite.projectMock.On("CreateProject", mock.Anything).
		Return(&project.Project{ID: 42, Name: "Q1 Report"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/connector/authorize", strings.NewReader(
		`{"name":"Q1 Report","resource_type":"orders","from_date":"2025-01-01","to_date":"2025-01-31"}`))
	req.AddCookie(sessionCookie(testSessionID))
	rec := httptest.NewRecorder()

	suite.handler.HandleAuthorizePostRequest(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	suite.Empty(rec.Result().Cookies())

	// The pending authorization landed under the presented session id.
	_, found := suite.sessionRepo.GetPendingAuthorization(testSessionID)
	suite.True(found)
}

func (suite *ConnectorHandlerTestSuite) TestAuthorizePostMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/connector/authorize",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	suite.handler.HandleAuthorizePostRequest(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)

	var errResp map[string]string
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&errResp))
	suite.Equal(ErrorInvalidRequestFormat.Code, errResp["code"])
}

func (suite *ConnectorHandlerTestSuite) TestAuthorizePostInvalidResourceType() {
	req := httptest.NewRequest(http.MethodPost, "/connector/authorize", strings.NewReader(
		`{"name":"Q1 Report","resource_type":"invoices","from_date":"2025-01-01","to_date":"2025-01-31"}`))
	rec := httptest.NewRecorder()

	suite.handler.HandleAuthorizePostRequest(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ConnectorHandlerTestSuite) TestCallbackRedirectsToWizardOnFailure() {
	req := httptest.NewRequest(http.MethodGet,
		"/connector/callback?error=access_denied&state=XYZ", nil)
	req.AddCookie(sessionCookie(testSessionID))
	rec := httptest.NewRecorder()

	suite.handler.HandleCallbackRequest(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	suite.Require().NoError(err)
	suite.Equal(setupRoute, location.Path)
	suite.Equal("error", location.Query().Get(connectionStatusParam))
	suite.Equal("authorization_denied", location.Query().Get(connectionReasonParam))
}

func (suite *ConnectorHandlerTestSuite) TestCallbackRedirectsToWizardOnSuccess() {
	err := suite.sessionRepo.SavePendingAuthorization(testSessionID, session.PendingAuthorization{
		CSRFToken:    "XYZ",
		ResourceType: "orders",
	})
	suite.Require().NoError(err)
	suite.sessionRepo.SaveProjectID(testSessionID, 57)

	suite.commerceMock.On("ExchangeCodeForToken", "abc123", "XYZ").
		Return(&commerce.TokenResponse{AccessToken: "tok1"}, nil).Once()
	suite.commerceMock.On("FetchAccountID", "tok1").Return("", nil).Once()
	suite.commerceMock.On("ImportData", "tok1", "orders", "", "", int64(57)).
		Return(&commerce.ImportSummary{Resource: "orders", RecordCount: 57}, nil).Once()
	suite.projectMock.On("UpdateProjectStep", int64(57), defaultDataImportStep).Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet,
		"/connector/callback?code=abc123&state=XYZ", nil)
	req.AddCookie(sessionCookie(testSessionID))
	rec := httptest.NewRecorder()

	suite.handler.HandleCallbackRequest(rec, req)

	suite.Equal(http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	suite.Require().NoError(err)
	suite.Equal("success", location.Query().Get(connectionStatusParam))
	suite.False(location.Query().Has(connectionReasonParam))
}

func (suite *ConnectorHandlerTestSuite) TestSetupGetReturnsResumeState() {
	err := suite.sessionRepo.SaveProjectDraft(testSessionID, session.ProjectDraft{
		Name:        "Q1 Report",
		CurrentStep: 4,
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/setup", nil)
	req.AddCookie(sessionCookie(testSessionID))
	rec := httptest.NewRecorder()

	suite.handler.HandleSetupGetRequest(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var resumeState ResumeState
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&resumeState))
	suite.Equal(4, resumeState.Step)
	suite.Require().NotNil(resumeState.Draft)
	suite.Equal("Q1 Report", resumeState.Draft.Name)
}

func (suite *ConnectorHandlerTestSuite) TestSetupGetHonorsExplicitStep() {
	req := httptest.NewRequest(http.MethodGet, "/setup?step=2", nil)
	req.AddCookie(sessionCookie(testSessionID))
	rec := httptest.NewRecorder()

	suite.handler.HandleSetupGetRequest(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var resumeState ResumeState
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&resumeState))
	suite.Equal(2, resumeState.Step)
}
