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
	"net/http"

	"github.com/sellsight/sellsight/internal/system/middleware"
)

// Initialize initializes the project service and registers its routes.
func Initialize(mux *http.ServeMux) ProjectServiceInterface {
	projectService := NewProjectService()
	projectHandler := newProjectHandler(projectService)
	registerRoutes(mux, projectHandler)
	return projectService
}

// registerRoutes registers the routes for project management operations.
func registerRoutes(mux *http.ServeMux, projectHandler *projectHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /projects", projectHandler.HandleProjectPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /projects",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PATCH, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /projects/{id}",
		projectHandler.HandleProjectGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PATCH /projects/{id}",
		projectHandler.HandleProjectPatchRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /projects/{id}",
		projectHandler.HandleProjectDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /projects/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
