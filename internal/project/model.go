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

import "time"

// Project represents an analysis project owned by a user.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Persona     string    `json:"persona"`
	Context     string    `json:"context"`
	Industry    string    `json:"industry"`
	CurrentStep int       `json:"current_step"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest represents the request body for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Persona     string `json:"persona"`
	Context     string `json:"context"`
	Industry    string `json:"industry"`
	CurrentStep int    `json:"current_step"`
}

// UpdateProjectStepRequest represents the request body for updating the wizard
// step of a project.
type UpdateProjectStepRequest struct {
	CurrentStep int `json:"current_step"`
}
