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
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sellsight/sellsight/internal/system/database/client"
	"github.com/sellsight/sellsight/internal/system/database/model"
	"github.com/sellsight/sellsight/tests/mocks/databasemock"
)

type ImportStoreTestSuite struct {
	suite.Suite
	dbClient   *databasemock.MockDBClient
	dbProvider *databasemock.MockDBProvider
	tx         *databasemock.MockTx
	store      importStoreInterface
}

func TestImportStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ImportStoreTestSuite))
}

func (suite *ImportStoreTestSuite) SetupTest() {
	suite.tx = &databasemock.MockTx{}
	suite.dbClient = &databasemock.MockDBClient{
		MockBeginTx: func() (model.TxInterface, error) {
			return suite.tx, nil
		},
	}
	suite.dbProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.dbClient, nil
		},
	}
	suite.store = &importStore{dbProvider: suite.dbProvider}
}

func (suite *ImportStoreTestSuite) TestReplaceImportedRecords() {
	records := []json.RawMessage{
		json.RawMessage(`{"id":1,"total":10}`),
		json.RawMessage(`{"id":2,"total":20}`),
	}

	err := suite.store.ReplaceImportedRecords(57, "orders", records)
	suite.Require().NoError(err)

	suite.Equal([]string{"runtime"}, suite.dbProvider.GetDBClientCalls)
	suite.Require().Len(suite.tx.ExecCalls, 3)
	suite.Equal(queryDeleteImportedRecords.Query, suite.tx.ExecCalls[0].Query)
	suite.Equal([]any{int64(57), "orders"}, suite.tx.ExecCalls[0].Args)
	suite.Equal(queryInsertImportedRecord.Query, suite.tx.ExecCalls[1].Query)
	suite.Equal("1", suite.tx.ExecCalls[1].Args[2])
	suite.Equal("2", suite.tx.ExecCalls[2].Args[2])
	suite.Equal(1, suite.tx.CommitCalls)
	suite.Equal(0, suite.tx.RollbackCalls)
}

func (suite *ImportStoreTestSuite) TestReplaceImportedRecordsEmptyBatchStillClears() {
	err := suite.store.ReplaceImportedRecords(57, "orders", nil)
	suite.Require().NoError(err)

	suite.Require().Len(suite.tx.ExecCalls, 1)
	suite.Equal(queryDeleteImportedRecords.Query, suite.tx.ExecCalls[0].Query)
	suite.Equal(1, suite.tx.CommitCalls)
}

func (suite *ImportStoreTestSuite) TestReplaceImportedRecordsRollsBackOnInsertFailure() {
	suite.tx.MockExec = func(query string, args ...any) (sql.Result, error) {
		if query == queryInsertImportedRecord.Query {
			return nil, errors.New("constraint violation")
		}
		return &databasemock.MockSQLResult{}, nil
	}

	err := suite.store.ReplaceImportedRecords(57, "orders",
		[]json.RawMessage{json.RawMessage(`{"id":1}`)})

	suite.Error(err)
	suite.Equal(1, suite.tx.RollbackCalls)
	suite.Equal(0, suite.tx.CommitCalls)
}

func (suite *ImportStoreTestSuite) TestCountImportedRecords() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return []map[string]interface{}{{"record_count": int64(57)}}, nil
	}

	count, err := suite.store.CountImportedRecords(57, "orders")

	suite.Require().NoError(err)
	suite.Equal(57, count)
}

func (suite *ImportStoreTestSuite) TestCountImportedRecordsQueryFailure() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) (
		[]map[string]interface{}, error) {
		return nil, errors.New("database unavailable")
	}

	_, err := suite.store.CountImportedRecords(57, "orders")

	suite.Error(err)
}
