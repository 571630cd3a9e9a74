package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// newContactID is swapped in tests that need deterministic ids.
var newContactID = func() string { return uuid.New().String() }

// MessageRefs remembers the last list and help messages sent to a user so a
// transport can edit them in place. Zero means none.
type MessageRefs struct {
	ListMessageID int
	HelpMessageID int
}

// UserRecord is one user's address book plus conversation state. Contacts
// keeps insertion order, which is the canonical order.
type UserRecord struct {
	UserID   int64
	Contacts []Contact
	Sort     SortMode
	Pending  PendingMode
	Refs     MessageRefs

	dirty bool
}

// Match is one search hit with its current position.
type Match struct {
	Index   int
	Contact Contact
}

// NewUserRecord returns the default record created on first interaction.
func NewUserRecord(userID int64) *UserRecord {
	return &UserRecord{
		UserID:  userID,
		Sort:    SortDefault,
		Pending: Idle{},
	}
}

// Mode returns the pending mode, never nil.
func (r *UserRecord) Mode() PendingMode {
	if r.Pending == nil {
		return Idle{}
	}
	return r.Pending
}

// SetPending replaces the pending mode. Selection state of the previous
// mode lives inside its variant and is dropped with it.
func (r *UserRecord) SetPending(m PendingMode) {
	if m == nil {
		m = Idle{}
	}
	r.Pending = m
	r.touch()
}

// SetSort changes the list view order.
func (r *UserRecord) SetSort(s SortMode) {
	if r.Sort == s {
		return
	}
	r.Sort = s
	r.touch()
}

// SetRefs records the message handles of the latest rendered views.
func (r *UserRecord) SetRefs(refs MessageRefs) {
	if r.Refs == refs {
		return
	}
	r.Refs = refs
	r.touch()
}

// Has reports whether a contact equal under the duplicate predicate exists.
func (r *UserRecord) Has(display, phone string) bool {
	return slices.ContainsFunc(r.Contacts, func(c Contact) bool {
		return c.SameAs(display, phone)
	})
}

// Add normalizes and validates the number, rejects duplicates and appends.
func (r *UserRecord) Add(display, rawPhone string) (Contact, error) {
	display = strings.TrimSpace(display)
	if display == "" {
		return Contact{}, ErrEmptyName
	}
	phone := NormalizePhone(rawPhone)
	if !ValidPhone(phone) {
		return Contact{}, fmt.Errorf("%q: %w", rawPhone, ErrInvalidPhone)
	}
	if r.Has(display, phone) {
		return Contact{}, fmt.Errorf("%s: %w", display, ErrDuplicate)
	}
	c := Contact{ID: newContactID(), Display: display, Phone: phone}
	r.Contacts = append(r.Contacts, c)
	r.touch()
	return c, nil
}

// RemoveAt deletes the contact at index. Every later contact shifts down by
// one, so cached positions must be re-resolved (see Target.Resolve).
func (r *UserRecord) RemoveAt(index int) (Contact, error) {
	if index < 0 || index >= len(r.Contacts) {
		return Contact{}, fmt.Errorf("index %d of %d: %w", index, len(r.Contacts), ErrIndexOutOfRange)
	}
	removed := r.Contacts[index]
	r.Contacts = slices.Delete(r.Contacts, index, index+1)
	r.touch()
	return removed, nil
}

// RemoveBatch removes, for each entry in order, the first contact whose
// display string and phone match exactly. Entries without a match are
// skipped. It returns how many contacts were removed.
func (r *UserRecord) RemoveBatch(entries []BatchEntry) int {
	removed := 0
	for _, e := range entries {
		i := slices.IndexFunc(r.Contacts, func(c Contact) bool {
			return c.ExactlyMatches(e.Display, e.Phone)
		})
		if i < 0 {
			continue
		}
		r.Contacts = slices.Delete(r.Contacts, i, i+1)
		removed++
	}
	if removed > 0 {
		r.touch()
	}
	return removed
}

// ReplaceAt overwrites the contact at index, keeping its id, and returns the
// previous value. The new data may not duplicate another contact.
func (r *UserRecord) ReplaceAt(index int, display, rawPhone string) (Contact, error) {
	if index < 0 || index >= len(r.Contacts) {
		return Contact{}, fmt.Errorf("index %d of %d: %w", index, len(r.Contacts), ErrIndexOutOfRange)
	}
	display = strings.TrimSpace(display)
	if display == "" {
		return Contact{}, ErrEmptyName
	}
	phone := NormalizePhone(rawPhone)
	if !ValidPhone(phone) {
		return Contact{}, fmt.Errorf("%q: %w", rawPhone, ErrInvalidPhone)
	}
	for i, c := range r.Contacts {
		if i != index && c.SameAs(display, phone) {
			return Contact{}, fmt.Errorf("%s: %w", display, ErrDuplicate)
		}
	}
	old := r.Contacts[index]
	r.Contacts[index] = Contact{ID: old.ID, Display: display, Phone: phone}
	r.touch()
	return old, nil
}

// Clear empties the contact list and keeps the rest of the record.
func (r *UserRecord) Clear() {
	r.Contacts = []Contact{}
	r.touch()
}

// Reset empties the list and returns every session field to its default.
func (r *UserRecord) Reset() {
	r.Contacts = []Contact{}
	r.Sort = SortDefault
	r.Pending = Idle{}
	r.Refs = MessageRefs{}
	r.touch()
}

// Search returns the contacts whose display string contains query,
// case-insensitively, in store order.
func (r *UserRecord) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	var matches []Match
	for i, c := range r.Contacts {
		if c.ContainsFold(query) {
			matches = append(matches, Match{Index: i, Contact: c})
		}
	}
	return matches
}

// Clone returns a deep copy of the contact list with the same session state.
// Pending variants are immutable values and are shared.
func (r *UserRecord) Clone() *UserRecord {
	cp := *r
	cp.Contacts = slices.Clone(r.Contacts)
	cp.dirty = false
	return &cp
}

// TakeDirty reports whether the record changed since the last call and
// resets the flag.
func (r *UserRecord) TakeDirty() bool {
	d := r.dirty
	r.dirty = false
	return d
}

func (r *UserRecord) touch() {
	r.dirty = true
}
