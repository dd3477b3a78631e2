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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sellsight/sellsight/internal/system/database/provider"
)

// importStoreInterface defines the interface for imported record store operations.
type importStoreInterface interface {
	ReplaceImportedRecords(projectID int64, resource string, records []json.RawMessage) error
	CountImportedRecords(projectID int64, resource string) (int, error)
}

// importStore is the default implementation of importStoreInterface.
type importStore struct {
	dbProvider provider.DBProviderInterface
}

// newImportStore creates a new instance of importStore.
func newImportStore() importStoreInterface {
	return &importStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// ReplaceImportedRecords replaces the stored records of a resource for a
// project with a freshly imported batch in a single transaction.
func (s *importStore) ReplaceImportedRecords(projectID int64, resource string,
	records []json.RawMessage) error {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteImportedRecords.Query, projectID, resource); err != nil {
		retErr := fmt.Errorf("failed to execute query for deleting prior imports: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	importedAt := time.Now().UTC()
	for _, record := range records {
		if _, err := tx.Exec(queryInsertImportedRecord.Query, projectID, resource,
			extractRecordID(record), string(record), importedAt); err != nil {
			retErr := fmt.Errorf("failed to execute query for inserting record: %w", err)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return retErr
		}
	}

	if err := tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	return nil
}

// CountImportedRecords counts the stored records of a resource for a project.
func (s *importStore) CountImportedRecords(projectID int64, resource string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountImportedRecords, projectID, resource)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	switch count := results[0]["record_count"].(type) {
	case int64:
		return int(count), nil
	case int:
		return count, nil
	case float64:
		return int(count), nil
	default:
		return 0, fmt.Errorf("failed to parse record_count as integer")
	}
}
