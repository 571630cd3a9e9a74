package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/alexanderramin/savecnt/internal/domain"
)

// SQLiteSnapshotStore implements SnapshotStore on top of the user and
// contact repos. SaveAll rewrites both tables inside one transaction.
type SQLiteSnapshotStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteSnapshotStore creates a SnapshotStore backed by database.
func NewSQLiteSnapshotStore(database *sql.DB, uow db.UnitOfWork) *SQLiteSnapshotStore {
	return &SQLiteSnapshotStore{db: database, uow: uow}
}

func (s *SQLiteSnapshotStore) LoadAll(ctx context.Context) (map[int64]*domain.UserRecord, error) {
	users, err := NewSQLiteUserRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := NewSQLiteContactRepo(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	table := make(map[int64]*domain.UserRecord, len(users))
	for _, u := range users {
		u.Contacts = contacts[u.UserID]
		if u.Contacts == nil {
			u.Contacts = []domain.Contact{}
		}
		table[u.UserID] = u
	}
	return table, nil
}

func (s *SQLiteSnapshotStore) SaveAll(ctx context.Context, records []*domain.UserRecord) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := NewSQLiteUserRepo(tx)
		txContacts := NewSQLiteContactRepo(tx)

		// Contacts cascade with their user, but clear them explicitly so the
		// statement count does not depend on the foreign_keys pragma.
		if err := txContacts.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txUsers.DeleteAll(ctx); err != nil {
			return err
		}
		for _, r := range records {
			if err := txUsers.Insert(ctx, r); err != nil {
				return err
			}
			if err := txContacts.InsertAll(ctx, r.UserID, r.Contacts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
