package repository

import (
	"context"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// UserRepo persists the session half of a UserRecord. Records it returns
// carry no contacts.
type UserRepo interface {
	List(ctx context.Context) ([]*domain.UserRecord, error)
	Get(ctx context.Context, userID int64) (*domain.UserRecord, error)
	Insert(ctx context.Context, r *domain.UserRecord) error
	DeleteAll(ctx context.Context) error
}

// ContactRepo persists contact lists in canonical order.
type ContactRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Contact, error)
	ListAll(ctx context.Context) (map[int64][]domain.Contact, error)
	InsertAll(ctx context.Context, userID int64, contacts []domain.Contact) error
	DeleteAll(ctx context.Context) error
}

// SnapshotStore loads and saves the whole table of user records. SaveAll
// replaces everything stored; a failed save leaves the previous snapshot.
type SnapshotStore interface {
	LoadAll(ctx context.Context) (map[int64]*domain.UserRecord, error)
	SaveAll(ctx context.Context, records []*domain.UserRecord) error
}
