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

package commerce

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sellsight/sellsight/internal/system/config"
	sysconst "github.com/sellsight/sellsight/internal/system/constants"
	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	httpservice "github.com/sellsight/sellsight/internal/system/http"
	"github.com/sellsight/sellsight/internal/system/log"
	sysutils "github.com/sellsight/sellsight/internal/system/utils"
)

// buildTokenRequest constructs the HTTP request to exchange the authorization code for tokens.
func buildTokenRequest(cfg *config.CommerceConfig, code, state string, logger *log.Logger) (
	*http.Request, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(requestParamClientID, cfg.ClientID)
	form.Set(requestParamClientSecret, cfg.ClientSecret)
	form.Set(requestParamRedirectURI, cfg.RedirectURI)
	form.Set(requestParamGrantType, grantTypeAuthorizationCode)
	form.Set(requestParamCode, code)
	if state != "" {
		form.Set(requestParamState, state)
	}

	httpReq, err := http.NewRequest(http.MethodPost, cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error("Failed to create token request", log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}

	httpReq.Header.Add(sysconst.ContentTypeHeaderName, sysconst.ContentTypeFormURLEncoded)
	httpReq.Header.Add(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	return httpReq, nil
}

// sendTokenRequest sends the token request to the provider and processes the response.
func sendTokenRequest(httpReq *http.Request, httpClient httpservice.HTTPClientInterface, logger *log.Logger) (
	*TokenResponse, *serviceerror.ServiceError) {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Token request to provider failed", log.Error(err))
		return nil, &ErrorTokenExchangeFailed
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close token response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Token endpoint returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return nil, &ErrorTokenExchangeFailed
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		logger.Error("Failed to parse token response", log.Error(err))
		return nil, &ErrorTokenExchangeFailed
	}

	return &tokenResp, nil
}

// buildResourceRequest constructs the HTTP request for one page of a resource listing.
func buildResourceRequest(cfg *config.CommerceConfig, resource, accessToken string, page int,
	fromDate, toDate string, logger *log.Logger) (*http.Request, *serviceerror.ServiceError) {
	queryParams := map[string]string{
		queryParamPage:    strconv.Itoa(page),
		queryParamPerPage: strconv.Itoa(importPageSize),
	}
	if fromDate != "" {
		queryParams[queryParamFromDate] = fromDate
	}
	if toDate != "" {
		queryParams[queryParamToDate] = toDate
	}

	requestURL, err := sysutils.GetURIWithQueryParams(
		strings.TrimSuffix(cfg.APIBaseURL, "/")+"/"+resource, queryParams)
	if err != nil {
		logger.Error("Failed to build resource listing URL", log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}

	httpReq, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logger.Error("Failed to create resource listing request", log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}

	httpReq.Header.Set(sysconst.AuthorizationHeaderName, sysconst.TokenTypeBearer+" "+accessToken)
	httpReq.Header.Set(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	return httpReq, nil
}

// sendResourceRequest sends a resource listing request and processes the response page.
func sendResourceRequest(httpReq *http.Request, httpClient httpservice.HTTPClientInterface, logger *log.Logger) (
	*resourcePage, *serviceerror.ServiceError) {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Resource listing request to provider failed", log.Error(err))
		return nil, &ErrorImportFailed
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close resource listing response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Provider API returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return nil, &ErrorImportFailed
	}

	var page resourcePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		logger.Error("Failed to parse resource listing response", log.Error(err))
		return nil, &ErrorImportFailed
	}

	return &page, nil
}

// buildUserInfoRequest constructs the HTTP request to fetch the account information.
func buildUserInfoRequest(userInfoURL, accessToken string, logger *log.Logger) (
	*http.Request, *serviceerror.ServiceError) {
	httpReq, err := http.NewRequest(http.MethodGet, userInfoURL, nil)
	if err != nil {
		logger.Error("Failed to create userinfo request", log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}

	httpReq.Header.Set(sysconst.AuthorizationHeaderName, sysconst.TokenTypeBearer+" "+accessToken)
	httpReq.Header.Set(sysconst.AcceptHeaderName, sysconst.ContentTypeJSON)

	return httpReq, nil
}

// sendUserInfoRequest sends the userinfo request and extracts the account identifier.
func sendUserInfoRequest(httpReq *http.Request, httpClient httpservice.HTTPClientInterface, logger *log.Logger) (
	string, *serviceerror.ServiceError) {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Userinfo request to provider failed", log.Error(err))
		return "", &ErrorUnexpectedServerError
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close userinfo response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("Userinfo endpoint returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return "", &ErrorUnexpectedServerError
	}

	var userInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		logger.Error("Failed to parse userinfo response", log.Error(err))
		return "", &ErrorUnexpectedServerError
	}

	return extractAccountID(userInfo), nil
}

// extractAccountID reads the account identifier out of the userinfo payload.
// Providers nest it under data.id or surface it as a top level id.
func extractAccountID(userInfo map[string]interface{}) string {
	payload := userInfo
	if data, ok := userInfo["data"].(map[string]interface{}); ok {
		payload = data
	}

	switch id := payload["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// extractRecordID reads the external identifier out of an opaque record payload.
func extractRecordID(record json.RawMessage) string {
	var envelope struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(record, &envelope); err != nil {
		return ""
	}
	return envelope.ID.String()
}
