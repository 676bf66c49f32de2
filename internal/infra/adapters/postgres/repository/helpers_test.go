package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "pgx")
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

var roomRowColumns = []string{"id", "name", "room_id", "capacity", "time_limit", "link", "comments"}
