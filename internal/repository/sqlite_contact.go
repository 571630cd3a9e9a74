package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/savecnt/internal/db"
	"github.com/alexanderramin/savecnt/internal/domain"
)

// SQLiteContactRepo implements ContactRepo using a SQLite database.
type SQLiteContactRepo struct {
	db db.DBTX
}

// NewSQLiteContactRepo creates a new SQLiteContactRepo.
func NewSQLiteContactRepo(conn db.DBTX) *SQLiteContactRepo {
	return &SQLiteContactRepo{db: conn}
}

func (r *SQLiteContactRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, phone FROM contacts WHERE user_id = ? ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing contacts for user %d: %w", userID, err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Display, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

func (r *SQLiteContactRepo) ListAll(ctx context.Context) (map[int64][]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, id, display_name, phone FROM contacts ORDER BY user_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]domain.Contact)
	for rows.Next() {
		var userID int64
		var c domain.Contact
		if err := rows.Scan(&userID, &c.ID, &c.Display, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		byUser[userID] = append(byUser[userID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return byUser, nil
}

func (r *SQLiteContactRepo) InsertAll(ctx context.Context, userID int64, contacts []domain.Contact) error {
	for pos, c := range contacts {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO contacts (id, user_id, position, display_name, phone) VALUES (?, ?, ?, ?, ?)`,
			c.ID, userID, pos, c.Display, c.Phone,
		)
		if err != nil {
			return fmt.Errorf("inserting contact %s for user %d: %w", c.ID, userID, err)
		}
	}
	return nil
}

func (r *SQLiteContactRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("deleting contacts: %w", err)
	}
	return nil
}
