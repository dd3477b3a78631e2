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

import "github.com/sellsight/sellsight/internal/system/error/serviceerror"

// Client errors for commerce provider operations.
var (
	// ErrorUnsupportedResource is the error when the resource type is not importable.
	ErrorUnsupportedResource = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMRC-1001",
		Error:            "Unsupported resource type",
		ErrorDescription: "The requested resource type cannot be imported from the provider",
	}
	// ErrorEmptyAuthorizationCode is the error when the authorization code is empty.
	ErrorEmptyAuthorizationCode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMRC-1002",
		Error:            "Empty authorization code",
		ErrorDescription: "The authorization code cannot be empty",
	}
)

// Server errors for commerce provider operations.
var (
	// ErrorTokenExchangeFailed is the error when the token request fails.
	ErrorTokenExchangeFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMRC-5001",
		Error:            "Token exchange failed",
		ErrorDescription: "The provider token endpoint rejected the authorization code exchange",
	}
	// ErrorInvalidTokenResponse is the error when the token response carries no access token.
	ErrorInvalidTokenResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMRC-5002",
		Error:            "Invalid token response",
		ErrorDescription: "The provider token response did not include an access token",
	}
	// ErrorImportFailed is the error when the resource import fails.
	ErrorImportFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMRC-5003",
		Error:            "Data import failed",
		ErrorDescription: "Importing records from the provider API failed",
	}
	// ErrorUnexpectedServerError is a generic error for unexpected server errors.
	ErrorUnexpectedServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMRC-5000",
		Error:            "Something went wrong",
		ErrorDescription: "An unexpected error occurred while talking to the provider",
	}
)
