package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/google/uuid"
)

var testPhoneCounter atomic.Int64

// NextPhone returns a fresh valid 10-digit number.
func NextPhone() string {
	return fmt.Sprintf("82%08d", testPhoneCounter.Add(1))
}

// RecordOption customizes a test record.
type RecordOption func(*domain.UserRecord)

// WithContact appends a contact with a random id, bypassing validation.
func WithContact(display, phone string) RecordOption {
	return func(r *domain.UserRecord) {
		r.Contacts = append(r.Contacts, domain.Contact{
			ID:      uuid.New().String(),
			Display: display,
			Phone:   phone,
		})
	}
}

// WithContacts appends n contacts named "<prefix> N" with fresh numbers.
func WithContacts(prefix string, n int) RecordOption {
	return func(r *domain.UserRecord) {
		for i := 1; i <= n; i++ {
			WithContact(fmt.Sprintf("%s %d", prefix, i), NextPhone())(r)
		}
	}
}

// WithPending sets the pending mode.
func WithPending(m domain.PendingMode) RecordOption {
	return func(r *domain.UserRecord) {
		r.Pending = m
	}
}

// WithSort sets the sort mode.
func WithSort(s domain.SortMode) RecordOption {
	return func(r *domain.UserRecord) {
		r.Sort = s
	}
}

// NewTestRecord builds a record for userID with an empty contact list.
func NewTestRecord(userID int64, opts ...RecordOption) *domain.UserRecord {
	r := domain.NewUserRecord(userID)
	r.Contacts = []domain.Contact{}
	for _, opt := range opts {
		opt(r)
	}
	r.TakeDirty()
	return r
}
