package bulkparse

import (
	"errors"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// Summary tallies the outcome of adding a parsed batch.
type Summary struct {
	Added      []domain.Contact
	Duplicates []Pair
	Invalid    []Pair // phone did not normalize to 10 or 11 digits
	Skipped    int    // empty name lines
}

// AddFunc stores one contact. It returns the domain errors of
// domain.UserRecord.Add.
type AddFunc func(display, phone string) (domain.Contact, error)

// Apply adds every pair through add. Invalid and duplicate pairs are
// skipped and tallied; the rest of the batch still commits.
func Apply(pairs []Pair, add AddFunc) (Summary, error) {
	var s Summary
	for _, p := range pairs {
		if !domain.ValidPhone(p.Phone) {
			s.Invalid = append(s.Invalid, p)
			continue
		}
		if p.Name == "" {
			s.Skipped++
			continue
		}
		c, err := add(p.Name, p.Phone)
		switch {
		case err == nil:
			s.Added = append(s.Added, c)
		case errors.Is(err, domain.ErrDuplicate):
			s.Duplicates = append(s.Duplicates, p)
		case errors.Is(err, domain.ErrInvalidPhone):
			s.Invalid = append(s.Invalid, p)
		case errors.Is(err, domain.ErrEmptyName):
			s.Skipped++
		default:
			return s, err
		}
	}
	return s, nil
}
