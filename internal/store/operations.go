package store

import (
	"context"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// Add appends a contact for user. See domain.UserRecord.Add for the errors.
func (s *Store) Add(ctx context.Context, userID int64, display, phone string) (domain.Contact, error) {
	var c domain.Contact
	err := s.Update(ctx, userID, func(r *domain.UserRecord) error {
		var err error
		c, err = r.Add(display, phone)
		return err
	})
	return c, err
}

// RemoveAt removes the contact at index and returns it.
func (s *Store) RemoveAt(ctx context.Context, userID int64, index int) (domain.Contact, error) {
	var c domain.Contact
	err := s.Update(ctx, userID, func(r *domain.UserRecord) error {
		var err error
		c, err = r.RemoveAt(index)
		return err
	})
	return c, err
}

// RemoveBatch removes exact matches and returns how many were removed.
func (s *Store) RemoveBatch(ctx context.Context, userID int64, entries []domain.BatchEntry) int {
	var n int
	_ = s.Update(ctx, userID, func(r *domain.UserRecord) error {
		n = r.RemoveBatch(entries)
		return nil
	})
	return n
}

// ReplaceAt overwrites the contact at index and returns the old value.
func (s *Store) ReplaceAt(ctx context.Context, userID int64, index int, display, phone string) (domain.Contact, error) {
	var old domain.Contact
	err := s.Update(ctx, userID, func(r *domain.UserRecord) error {
		var err error
		old, err = r.ReplaceAt(index, display, phone)
		return err
	})
	return old, err
}

// Clear empties the user's contact list.
func (s *Store) Clear(ctx context.Context, userID int64) {
	_ = s.Update(ctx, userID, func(r *domain.UserRecord) error {
		r.Clear()
		return nil
	})
}

// Search returns case-insensitive substring matches in store order.
func (s *Store) Search(ctx context.Context, userID int64, query string) []domain.Match {
	var m []domain.Match
	s.View(ctx, userID, func(r *domain.UserRecord) {
		m = r.Search(query)
	})
	return m
}

// Contacts returns a copy of the user's contacts in canonical order.
func (s *Store) Contacts(ctx context.Context, userID int64) []domain.Contact {
	return s.Snapshot(ctx, userID).Contacts
}
