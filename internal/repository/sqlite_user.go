package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/alexanderramin/savecnt/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `user_id, sort_mode, pending, list_message_id, help_message_id`

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.UserRecord
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (r *SQLiteUserRepo) Get(ctx context.Context, userID int64) (*domain.UserRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return u, err
}

func (r *SQLiteUserRepo) Insert(ctx context.Context, u *domain.UserRecord) error {
	pending, err := domain.EncodePending(u.Mode())
	if err != nil {
		return err
	}
	sortMode := u.Sort
	if sortMode == "" {
		sortMode = domain.SortDefault
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, sort_mode, pending, list_message_id, help_message_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.UserID,
		string(sortMode),
		pending,
		u.Refs.ListMessageID,
		u.Refs.HelpMessageID,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user %d: %w", u.UserID, err)
	}
	return nil
}

func (r *SQLiteUserRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("deleting users: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser builds a record from one users row. An unreadable pending mode or
// sort mode falls back to the default so one bad row cannot block a load.
func scanUser(row rowScanner) (*domain.UserRecord, error) {
	var (
		id      int64
		sortStr string
		pending string
		refs    domain.MessageRefs
	)
	if err := row.Scan(&id, &sortStr, &pending, &refs.ListMessageID, &refs.HelpMessageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u := domain.NewUserRecord(id)
	u.Refs = refs
	if s, err := domain.ParseSortMode(sortStr); err == nil {
		u.Sort = s
	}
	if m, err := domain.DecodePending(pending); err == nil {
		u.Pending = m
	}
	return u, nil
}
