// Package bulkparse turns pasted multi-line text into name/phone pairs.
//
// The text alternates a name line and a phone line. An odd number of lines
// rejects the whole message; every other problem is local to one pair.
package bulkparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// ErrOddLineCount is matched by every *FormatError.
var ErrOddLineCount = errors.New("each name must be followed by a phone number")

// FormatError rejects a message whose lines do not pair up.
type FormatError struct {
	Lines int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%d lines: %v", e.Lines, ErrOddLineCount)
}

func (e *FormatError) Unwrap() error { return ErrOddLineCount }

// Pair is one name line and the phone line after it.
type Pair struct {
	Line     int    // 1-based line of the name
	Name     string // trimmed display string
	RawPhone string // trimmed phone line as typed
	Phone    string // normalized digits, possibly invalid
}

// Valid reports whether the pair has a name and a 10 or 11 digit phone.
func (p Pair) Valid() bool {
	return p.Name != "" && domain.ValidPhone(p.Phone)
}

// Parse splits text into pairs without validating them.
func Parse(text string) ([]Pair, error) {
	lines := Lines(text)
	if len(lines)%2 != 0 {
		return nil, &FormatError{Lines: len(lines)}
	}
	pairs := make([]Pair, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		raw := strings.TrimSpace(lines[i+1])
		pairs = append(pairs, Pair{
			Line:     i + 1,
			Name:     strings.TrimSpace(lines[i]),
			RawPhone: raw,
			Phone:    domain.NormalizePhone(raw),
		})
	}
	return pairs, nil
}

// ParseRemoval parses a batch-removal message. Pairs with an empty name or
// no digits are dropped; anything else is kept as typed since matching
// against the store is exact.
func ParseRemoval(text string) ([]domain.BatchEntry, error) {
	pairs, err := Parse(text)
	if err != nil {
		return nil, err
	}
	var entries []domain.BatchEntry
	for _, p := range pairs {
		if p.Name == "" || p.Phone == "" {
			continue
		}
		entries = append(entries, domain.BatchEntry{Display: p.Name, Phone: p.Phone})
	}
	return entries, nil
}

// Lines splits trimmed text on any line break. Blank lines inside the text
// count as lines.
func Lines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
