package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func insertUser(ctx context.Context, tx db.DBTX, userID int64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO users (user_id, updated_at) VALUES (?, ?)`,
		userID, time.Now().UTC().Format(time.RFC3339))
	return err
}

func countUsers(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	return n
}

func TestWithinTx_Commits(t *testing.T) {
	database := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertUser(ctx, tx, 1)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countUsers(t, database))
}

func TestWithinTx_ErrorRollsBackEveryStatement(t *testing.T) {
	database := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(database)
	boom := errors.New("second write failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertUser(ctx, tx, 1); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countUsers(t, database))
}

func TestWithinTx_PanicRollsBack(t *testing.T) {
	database := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertUser(ctx, tx, 1)
			panic("boom")
		})
	})

	assert.Zero(t, countUsers(t, database))
}

func TestWithinTx_ContactNeedsUser(t *testing.T) {
	database := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (id, user_id, position, display_name, phone) VALUES (?, ?, ?, ?, ?)`,
			"c1", 99, 0, "Ana", "8299610303")
		return err
	})

	assert.Error(t, err, "foreign keys are enforced")
}
