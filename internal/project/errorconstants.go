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

import "github.com/sellsight/sellsight/internal/system/error/serviceerror"

// Client errors for project management operations.
var (
	// ErrorInvalidRequestFormat is the error when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRJ-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid fields",
	}
	// ErrorEmptyProjectName is the error when the project name is empty.
	ErrorEmptyProjectName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRJ-1002",
		Error:            "Empty project name",
		ErrorDescription: "The project name cannot be empty",
	}
	// ErrorInvalidProjectID is the error when the project id is not a positive integer.
	ErrorInvalidProjectID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRJ-1003",
		Error:            "Invalid project id",
		ErrorDescription: "The project id must be a positive integer",
	}
	// ErrorProjectNotFound is the error when the project is not found.
	ErrorProjectNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PRJ-1004",
		Error:            "Project not found",
		ErrorDescription: "No project found for the provided id",
	}
)

// Server errors for project management operations.
var (
	// ErrorInternalServerError is a generic error for unexpected server errors.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PRJ-5000",
		Error:            "Something went wrong",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
