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

package client

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellsight/sellsight/internal/system/database/model"
)

func TestQueryReturnsLowercaseColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"PROJECT_ID", "NAME"}).
		AddRow(int64(42), "Q1 Report")
	mock.ExpectQuery("SELECT (.+) FROM PROJECT").WillReturnRows(rows)

	dbClient := NewDBClient(db, "postgres")
	results, err := dbClient.Query(model.DBQuery{
		ID:    "TSQ-TEST-01",
		Query: "SELECT PROJECT_ID, NAME FROM PROJECT",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(42), results[0]["project_id"])
	assert.Equal(t, "Q1 Report", results[0]["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryPropagatesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT (.+)").WillReturnError(errors.New("connection reset"))

	dbClient := NewDBClient(db, "postgres")
	_, err = dbClient.Query(model.DBQuery{ID: "TSQ-TEST-02", Query: "SELECT 1"})

	assert.Error(t, err)
}

func TestExecuteReturnsRowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE PROJECT SET CURRENT_STEP").
		WithArgs(3, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	dbClient := NewDBClient(db, "postgres")
	rowsAffected, err := dbClient.Execute(model.DBQuery{
		ID:    "TSQ-TEST-03",
		Query: "UPDATE PROJECT SET CURRENT_STEP = $1 WHERE PROJECT_ID = $2",
	}, 3, int64(42))

	require.NoError(t, err)
	assert.Equal(t, int64(1), rowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionCommit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM IMPORTED_RECORD").
		WithArgs(int64(42), "orders").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	dbClient := NewDBClient(db, "postgres")
	tx, err := dbClient.BeginTx()
	require.NoError(t, err)

	_, err = tx.Exec("DELETE FROM IMPORTED_RECORD WHERE PROJECT_ID = $1 AND RESOURCE_TYPE = $2",
		int64(42), "orders")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO IMPORTED_RECORD").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	dbClient := NewDBClient(db, "postgres")
	tx, err := dbClient.BeginTx()
	require.NoError(t, err)

	_, err = tx.Exec("INSERT INTO IMPORTED_RECORD (PROJECT_ID) VALUES ($1)", int64(42))
	require.Error(t, err)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
