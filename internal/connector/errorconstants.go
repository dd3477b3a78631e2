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

import "github.com/sellsight/sellsight/internal/system/error/serviceerror"

// Client errors for connector flow operations.
var (
	// ErrorInvalidRequestFormat is the error when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CONN-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid fields",
	}
	// ErrorInvalidDateRange is the error when the import date range is invalid.
	ErrorInvalidDateRange = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CONN-1002",
		Error:            "Invalid date range",
		ErrorDescription: "Both dates must be present and the start date cannot be after the end date",
	}
	// ErrorInvalidResourceType is the error when the resource type is not importable.
	ErrorInvalidResourceType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CONN-1003",
		Error:            "Invalid resource type",
		ErrorDescription: "The requested resource type cannot be imported from the provider",
	}
)

// Server errors for connector flow operations.
var (
	// ErrorProjectCreationFailed is the error when the project service call fails.
	ErrorProjectCreationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CONN-5001",
		Error:            "Project creation failed",
		ErrorDescription: "Creating the project draft failed; nothing was persisted",
	}
	// ErrorSessionPersistenceFailed is the error when the session store write fails.
	ErrorSessionPersistenceFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CONN-5002",
		Error:            "Session persistence failed",
		ErrorDescription: "Persisting the pending authorization state failed",
	}
	// ErrorInternalServerError is a generic error for unexpected server errors.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CONN-5000",
		Error:            "Something went wrong",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
