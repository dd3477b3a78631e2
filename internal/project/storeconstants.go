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

import "github.com/sellsight/sellsight/internal/system/database/model"

var (
	// queryCreateProject is the query to create a new project.
	queryCreateProject = model.DBQuery{
		ID: "PJQ-PRJ_MGT-01",
		Query: "INSERT INTO PROJECT (NAME, PERSONA, CONTEXT, INDUSTRY, CURRENT_STEP, CREATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6) RETURNING PROJECT_ID",
	}
	// queryGetProjectByID is the query to get a project by project ID.
	queryGetProjectByID = model.DBQuery{
		ID: "PJQ-PRJ_MGT-02",
		Query: "SELECT PROJECT_ID, NAME, PERSONA, CONTEXT, INDUSTRY, CURRENT_STEP, CREATED_AT " +
			"FROM PROJECT WHERE PROJECT_ID = $1",
	}
	// queryUpdateProjectStep is the query to update the current wizard step of a project.
	queryUpdateProjectStep = model.DBQuery{
		ID:    "PJQ-PRJ_MGT-03",
		Query: "UPDATE PROJECT SET CURRENT_STEP = $2 WHERE PROJECT_ID = $1",
	}
	// queryDeleteProjectByID is the query to delete a project by project ID.
	queryDeleteProjectByID = model.DBQuery{
		ID:    "PJQ-PRJ_MGT-04",
		Query: "DELETE FROM PROJECT WHERE PROJECT_ID = $1",
	}
)
