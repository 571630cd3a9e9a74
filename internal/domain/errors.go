package domain

import "errors"

var (
	// ErrInvalidPhone indicates a number that does not normalize to 10 or 11 digits.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrDuplicate indicates a contact with the same display name
	// (case-insensitive) and phone already exists.
	ErrDuplicate = errors.New("duplicate contact")

	// ErrEmptyName indicates a blank display string.
	ErrEmptyName = errors.New("empty contact name")

	// ErrIndexOutOfRange indicates a positional index outside the contact list.
	ErrIndexOutOfRange = errors.New("contact index out of range")
)
