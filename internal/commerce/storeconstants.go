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

import "github.com/sellsight/sellsight/internal/system/database/model"

var (
	// queryInsertImportedRecord is the query to insert one imported provider record.
	queryInsertImportedRecord = model.DBQuery{
		ID: "CMQ-IMPORT-01",
		Query: "INSERT INTO IMPORTED_RECORD (PROJECT_ID, RESOURCE_TYPE, EXTERNAL_ID, PAYLOAD, IMPORTED_AT) " +
			"VALUES ($1, $2, $3, $4, $5)",
	}
	// queryDeleteImportedRecords is the query to delete prior imports of a
	// resource for a project before a fresh import run.
	queryDeleteImportedRecords = model.DBQuery{
		ID:    "CMQ-IMPORT-02",
		Query: "DELETE FROM IMPORTED_RECORD WHERE PROJECT_ID = $1 AND RESOURCE_TYPE = $2",
	}
	// queryCountImportedRecords is the query to count imported records of a
	// resource for a project.
	queryCountImportedRecords = model.DBQuery{
		ID: "CMQ-IMPORT-03",
		Query: "SELECT COUNT(*) AS RECORD_COUNT FROM IMPORTED_RECORD " +
			"WHERE PROJECT_ID = $1 AND RESOURCE_TYPE = $2",
	}
)
