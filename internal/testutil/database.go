// Package testutil provides helpers shared by repository and handler tests.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// NewMockDB opens a sqlmock database that matches queries by regular expression and closes it
// when the test ends. Each test must still check ExpectationsWereMet.
func NewMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, mock
}

// NewLogger returns a logger that discards output.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FixedTime is a stable UTC instant for assertions on timestamps.
var FixedTime = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
