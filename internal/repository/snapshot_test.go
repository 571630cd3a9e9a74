package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotStore(t *testing.T) *SQLiteSnapshotStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteSnapshotStore(database, testutil.NewTestUoW(database))
}

func TestSnapshot_LoadAllEmpty(t *testing.T) {
	s := newSnapshotStore(t)

	table, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestSnapshot_SaveThenLoadKeepsOrderAndSession(t *testing.T) {
	s := newSnapshotStore(t)
	ctx := context.Background()

	target := domain.Target{Index: 1, ContactID: "will-be-replaced"}
	alice := testutil.NewTestRecord(10,
		testutil.WithContact("Zé - Casa", "8299610303"),
		testutil.WithContact("Ana", "82999610303"),
		testutil.WithSort(domain.SortAlphabetical),
	)
	target.ContactID = alice.Contacts[1].ID
	alice.Pending = domain.EditingContact{Target: target}
	alice.Refs = domain.MessageRefs{ListMessageID: 5, HelpMessageID: 6}

	bob := testutil.NewTestRecord(20)

	require.NoError(t, s.SaveAll(ctx, []*domain.UserRecord{alice, bob}))

	table, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, table, 2)

	got := table[10]
	require.NotNil(t, got)
	assert.Equal(t, alice.Contacts, got.Contacts)
	assert.Equal(t, domain.SortAlphabetical, got.Sort)
	assert.Equal(t, domain.EditingContact{Target: target}, got.Pending)
	assert.Equal(t, alice.Refs, got.Refs)

	assert.NotNil(t, table[20].Contacts)
	assert.Empty(t, table[20].Contacts)
	assert.Equal(t, domain.ModeIdle, table[20].Mode().Kind())
}

func TestSnapshot_SaveReplacesPreviousSnapshot(t *testing.T) {
	s := newSnapshotStore(t)
	ctx := context.Background()

	first := testutil.NewTestRecord(1, testutil.WithContacts("Old", 3))
	require.NoError(t, s.SaveAll(ctx, []*domain.UserRecord{first}))

	second := testutil.NewTestRecord(2, testutil.WithContacts("New", 1))
	require.NoError(t, s.SaveAll(ctx, []*domain.UserRecord{second}))

	table, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, table, 1)
	require.Contains(t, table, int64(2))
	assert.Len(t, table[2].Contacts, 1)
}

func TestSnapshot_FailedSaveKeepsPreviousSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	good := NewSQLiteSnapshotStore(database, testutil.NewTestUoW(database))
	before := testutil.NewTestRecord(1, testutil.WithContacts("Keep", 2))
	require.NoError(t, good.SaveAll(ctx, []*domain.UserRecord{before}))

	// Exec #1 deletes contacts, #2 deletes users, #3 inserts the user,
	// #4 inserts its first contact.
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: fmt.Errorf("injected contact insert failure")}
	broken := NewSQLiteSnapshotStore(database, failing)

	after := testutil.NewTestRecord(1, testutil.WithContacts("Lost", 5))
	err := broken.SaveAll(ctx, []*domain.UserRecord{after})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected contact insert failure")
	assert.Equal(t, 1, failing.Rollbacks())

	table, err := good.LoadAll(ctx)
	require.NoError(t, err)
	require.Contains(t, table, int64(1))
	assert.Equal(t, before.Contacts, table[1].Contacts)
}

func TestSnapshot_CorruptPendingFallsBackToIdle(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO users (user_id, sort_mode, pending, updated_at) VALUES (7, 'padrao', '{oops', 'now')`)
	require.NoError(t, err)

	s := NewSQLiteSnapshotStore(database, testutil.NewTestUoW(database))
	table, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Contains(t, table, int64(7))
	assert.Equal(t, domain.ModeIdle, table[7].Mode().Kind())
}
