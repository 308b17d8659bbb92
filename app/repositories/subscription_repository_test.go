package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// recordingDriver captures every prepared statement so tests can assert the
// SQL a repository builds, without a live database.
var recordedSQL []string

type recordingDriver struct{}

func (recordingDriver) Open(string) (driver.Conn, error) { return recordingConn{}, nil }

type recordingConn struct{}

func (recordingConn) Prepare(query string) (driver.Stmt, error) {
	recordedSQL = append(recordedSQL, query)
	return recordingStmt{}, nil
}
func (recordingConn) Close() error              { return nil }
func (recordingConn) Begin() (driver.Tx, error) { return recordingTx{}, nil }

type recordingTx struct{}

func (recordingTx) Commit() error   { return nil }
func (recordingTx) Rollback() error { return nil }

type recordingStmt struct{}

func (recordingStmt) Close() error  { return nil }
func (recordingStmt) NumInput() int { return -1 }
func (recordingStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}
func (recordingStmt) Query([]driver.Value) (driver.Rows, error) { return emptyRows{}, nil }

type emptyRows struct{}

func (emptyRows) Columns() []string              { return nil }
func (emptyRows) Close() error                   { return nil }
func (emptyRows) Next(dest []driver.Value) error { return io.EOF }

func init() {
	sql.Register("recording", recordingDriver{})
}

func openRecordingDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("recording", "")
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

// GetPage issues two statements from one filtered query; neither may inherit
// the other's clauses.
func TestSubscriptionGetPageStatementsAreIndependent(t *testing.T) {
	repo := NewSubscriptionRepository(openRecordingDB(t))

	recordedSQL = nil
	_, _, err := repo.GetPage(context.Background(), 2, 10, "gold")
	require.NoError(t, err)
	require.Len(t, recordedSQL, 2)

	countSQL, findSQL := recordedSQL[0], recordedSQL[1]
	assert.Contains(t, countSQL, "count(*)")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.Equal(t, 1, strings.Count(countSQL, "email LIKE"))

	assert.Contains(t, findSQL, "ORDER BY created_at DESC")
	assert.Contains(t, findSQL, "LIMIT")
	assert.Equal(t, 1, strings.Count(findSQL, "email LIKE"))

	// A repeat call must build the identical statements, not accumulate.
	recordedSQL = nil
	_, _, err = repo.GetPage(context.Background(), 2, 10, "gold")
	require.NoError(t, err)
	require.Len(t, recordedSQL, 2)
	assert.Equal(t, countSQL, recordedSQL[0])
	assert.Equal(t, findSQL, recordedSQL[1])
}

func TestProductGetPageStatementsAreIndependent(t *testing.T) {
	repo := NewProductRepository(openRecordingDB(t))

	recordedSQL = nil
	_, _, err := repo.GetPage(context.Background(), 1, 10, "ring", "cat-1", true)
	require.NoError(t, err)
	require.Len(t, recordedSQL, 2)

	countSQL, findSQL := recordedSQL[0], recordedSQL[1]
	assert.Contains(t, countSQL, "count(*)")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.Equal(t, 1, strings.Count(countSQL, "category_id"))

	assert.Contains(t, findSQL, "ORDER BY created_at DESC")
	assert.Contains(t, findSQL, "LIMIT")
	assert.Equal(t, 1, strings.Count(findSQL, "category_id"))
	assert.Equal(t, 1, strings.Count(findSQL, "is_active"))
}
