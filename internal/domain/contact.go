package domain

import (
	"fmt"
	"strings"
)

const (
	// CategorySeparator splits a display string into name and category.
	CategorySeparator = " - "
	// DefaultCategory is reported for display strings without a separator.
	DefaultCategory = "Sem categoria"
)

// Contact is one address book entry. Only the display string and the phone
// digits are stored; name and category are derived from Display.
type Contact struct {
	ID      string
	Display string
	Phone   string
}

// SplitDisplay splits a display string on the first CategorySeparator.
func SplitDisplay(display string) (name, category string) {
	if before, after, ok := strings.Cut(display, CategorySeparator); ok {
		return before, after
	}
	return display, DefaultCategory
}

// Name returns the part of the display string before the category separator.
func (c Contact) Name() string {
	name, _ := SplitDisplay(c.Display)
	return name
}

// Category returns the category parsed from the display string, or
// DefaultCategory.
func (c Contact) Category() string {
	_, category := SplitDisplay(c.Display)
	return category
}

// FullName is "Name - Category", always carrying a category.
func (c Contact) FullName() string {
	name, category := SplitDisplay(c.Display)
	return name + CategorySeparator + category
}

// SameAs is the duplicate predicate: case-insensitive display string and
// identical phone digits.
func (c Contact) SameAs(display, phone string) bool {
	return c.Phone == phone && strings.EqualFold(c.Display, display)
}

// ExactlyMatches compares the stored display string and phone verbatim.
func (c Contact) ExactlyMatches(display, phone string) bool {
	return c.Display == display && c.Phone == phone
}

// ContainsFold reports whether the lower-cased display string contains the
// lower-cased query.
func (c Contact) ContainsFold(query string) bool {
	return strings.Contains(strings.ToLower(c.Display), strings.ToLower(query))
}

// String renders the contact the way replies show it: "Ana - Casa (+55 8299610303)".
func (c Contact) String() string {
	return fmt.Sprintf("%s (+%s %s)", c.Display, CountryPrefix, c.Phone)
}
