package db_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGarbage(t *testing.T, path string) []byte {
	t.Helper()
	garbage := bytes.Repeat([]byte("definitely not sqlite "), 256)
	require.NoError(t, os.WriteFile(path, garbage, 0o644))
	return garbage
}

func TestOpenDB_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savecnt.db")
	writeGarbage(t, path)

	_, err := db.OpenDB(path)

	assert.Error(t, err)
}

func TestOpenOrReset_MovesCorruptFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savecnt.db")
	garbage := writeGarbage(t, path)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	database, aside, err := db.OpenOrReset(path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.True(t, strings.HasPrefix(aside, path+".corrupt-"), aside)
	kept, err := os.ReadFile(aside)
	require.NoError(t, err)
	assert.Equal(t, garbage, kept)

	assert.Equal(t, 0, countUsers(t, database))
	assert.Contains(t, logs.String(), "database_unreadable")
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
}

func TestOpenOrReset_HealthyFileKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savecnt.db")
	first, err := db.OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, insertUser(context.Background(), first, 42))
	require.NoError(t, first.Close())

	database, aside, err := db.OpenOrReset(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.Empty(t, aside)
	assert.Equal(t, 1, countUsers(t, database))
}

func TestOpenOrReset_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "savecnt.db")

	database, aside, err := db.OpenOrReset(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.Empty(t, aside)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
