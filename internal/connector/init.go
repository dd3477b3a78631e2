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
	"net/http"
	"time"

	"github.com/sellsight/sellsight/internal/commerce"
	"github.com/sellsight/sellsight/internal/project"
	"github.com/sellsight/sellsight/internal/session"
	sessionstore "github.com/sellsight/sellsight/internal/session/store"
	"github.com/sellsight/sellsight/internal/system/config"
	"github.com/sellsight/sellsight/internal/system/middleware"
)

// Initialize initializes the connector flow service and registers its routes.
func Initialize(mux *http.ServeMux, projectService project.ProjectServiceInterface) ConnectorServiceInterface {
	var dataStore sessionstore.SessionDataStoreInterface
	if validity := config.GetSellSightRuntime().Config.Session.ValidityPeriod; validity > 0 {
		dataStore = sessionstore.NewSessionDataStore(time.Duration(validity) * time.Second)
	}

	connectorService := NewConnectorService(
		session.NewRepository(dataStore),
		projectService,
		commerce.NewCommerceService(),
	)
	connectorHandler := newConnectorHandler(connectorService)
	registerRoutes(mux, connectorHandler)
	return connectorService
}

// registerRoutes registers the routes for connector flow operations.
func registerRoutes(mux *http.ServeMux, connectorHandler *connectorHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /connector/authorize",
		connectorHandler.HandleAuthorizePostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /connector/authorize",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	// The callback is invoked by a top level browser navigation, never cross
	// origin XHR, so it is registered without the CORS wrapper.
	mux.HandleFunc("GET /connector/callback", connectorHandler.HandleCallbackRequest)

	mux.HandleFunc(middleware.WithCORS("GET /setup",
		connectorHandler.HandleSetupGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /setup",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
