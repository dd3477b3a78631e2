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

// Package commerce provides the outbound client for the e-commerce provider:
// authorization code token exchange and paginated resource imports.
package commerce

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/sellsight/sellsight/internal/system/config"
	"github.com/sellsight/sellsight/internal/system/error/serviceerror"
	httpservice "github.com/sellsight/sellsight/internal/system/http"
	"github.com/sellsight/sellsight/internal/system/log"
)

const loggerComponentName = "CommerceService"

// supportedResources lists the provider resources available for import.
var supportedResources = []string{"orders", "products", "customers"}

// CommerceServiceInterface defines the interface for the commerce provider client.
type CommerceServiceInterface interface {
	ExchangeCodeForToken(code, state string) (*TokenResponse, *serviceerror.ServiceError)
	FetchAccountID(accessToken string) (string, *serviceerror.ServiceError)
	ImportData(accessToken, resource, fromDate, toDate string, projectID int64) (
		*ImportSummary, *serviceerror.ServiceError)
	GetImportedRecordCount(projectID int64, resource string) (int, *serviceerror.ServiceError)
}

// commerceService is the default implementation of the CommerceServiceInterface.
type commerceService struct {
	httpClient  httpservice.HTTPClientInterface
	importStore importStoreInterface
}

// NewCommerceService creates a new instance of the commerce provider client.
func NewCommerceService() CommerceServiceInterface {
	cfg := commerceConfig()
	httpClient := httpservice.GetHTTPClient()
	if cfg.RequestTimeout > 0 {
		httpClient = httpservice.NewHTTPClientWithTimeout(
			time.Duration(cfg.RequestTimeout) * time.Second)
	}
	return &commerceService{
		httpClient:  httpClient,
		importStore: newImportStore(),
	}
}

// commerceConfig returns the provider client configuration from the runtime.
func commerceConfig() *config.CommerceConfig {
	return &config.GetSellSightRuntime().Config.Commerce
}

// ExchangeCodeForToken exchanges the authorization code for a token set at the
// provider token endpoint.
func (cs *commerceService) ExchangeCodeForToken(code, state string) (
	*TokenResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(code) == "" {
		return nil, &ErrorEmptyAuthorizationCode
	}

	httpReq, svcErr := buildTokenRequest(commerceConfig(), code, state, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	tokenResp, svcErr := sendTokenRequest(httpReq, cs.httpClient, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	if strings.TrimSpace(tokenResp.AccessToken) == "" {
		logger.Error("Provider token response did not include an access token")
		return nil, &ErrorInvalidTokenResponse
	}

	logger.Debug("Token exchange completed",
		log.String("accessToken", log.MaskString(tokenResp.AccessToken)))
	return tokenResp, nil
}

// FetchAccountID fetches the external account identifier of the connected
// store. Returns an empty identifier when no userinfo endpoint is configured.
func (cs *commerceService) FetchAccountID(accessToken string) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cfg := commerceConfig()
	if strings.TrimSpace(cfg.UserInfoURL) == "" {
		return "", nil
	}

	httpReq, svcErr := buildUserInfoRequest(cfg.UserInfoURL, accessToken, logger)
	if svcErr != nil {
		return "", svcErr
	}

	return sendUserInfoRequest(httpReq, cs.httpClient, logger)
}

// ImportData fetches every page of the requested resource for the given date
// range and stores the records against the project. Returns the record count.
func (cs *commerceService) ImportData(accessToken, resource, fromDate, toDate string,
	projectID int64) (*ImportSummary, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.Int64(log.LoggerKeyProjectID, projectID))

	if !slices.Contains(supportedResources, resource) {
		return nil, &ErrorUnsupportedResource
	}

	records := make([]json.RawMessage, 0)
	cfg := commerceConfig()
	for page := 1; page <= maxImportPages; page++ {
		httpReq, svcErr := buildResourceRequest(cfg, resource, accessToken, page,
			fromDate, toDate, logger)
		if svcErr != nil {
			return nil, svcErr
		}

		resourcePage, svcErr := sendResourceRequest(httpReq, cs.httpClient, logger)
		if svcErr != nil {
			return nil, svcErr
		}

		records = append(records, resourcePage.Data...)
		if len(resourcePage.Data) == 0 ||
			resourcePage.Pagination.CurrentPage >= resourcePage.Pagination.LastPage {
			break
		}
	}

	if err := cs.importStore.ReplaceImportedRecords(projectID, resource, records); err != nil {
		logger.Error("Failed to store imported records", log.Error(err))
		return nil, &ErrorImportFailed
	}

	logger.Debug("Resource import completed", log.String("resource", resource),
		log.Int("recordCount", len(records)))
	return &ImportSummary{
		Resource:    resource,
		RecordCount: len(records),
	}, nil
}

// GetImportedRecordCount returns the number of records currently stored for
// the resource of the given project.
func (cs *commerceService) GetImportedRecordCount(projectID int64, resource string) (
	int, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.Int64(log.LoggerKeyProjectID, projectID))

	if !slices.Contains(supportedResources, resource) {
		return 0, &ErrorUnsupportedResource
	}

	count, err := cs.importStore.CountImportedRecords(projectID, resource)
	if err != nil {
		logger.Error("Failed to count imported records", log.Error(err))
		return 0, &ErrorUnexpectedServerError
	}
	return count, nil
}
