package domain

import "fmt"

// SortMode selects how the list view orders contacts. It never reorders the
// stored sequence.
type SortMode string

const (
	SortDefault      SortMode = "padrao"
	SortAlphabetical SortMode = "alfabetica"
)

// ParseSortMode accepts the wire values used in action tags.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortDefault, SortAlphabetical:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("invalid sort mode %q: must be one of: padrao, alfabetica", s)
}

// Toggle returns the other sort mode.
func (m SortMode) Toggle() SortMode {
	if m == SortAlphabetical {
		return SortDefault
	}
	return SortAlphabetical
}

// ExportFormat identifies a serializer for the export action.
type ExportFormat string

const (
	FormatVCF  ExportFormat = "vcf"
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// ExportFormats lists every format in the order "all formats" exports them.
var ExportFormats = []ExportFormat{FormatVCF, FormatCSV, FormatJSON}

// ParseExportFormat accepts "vcf", "csv" or "json".
func ParseExportFormat(s string) (ExportFormat, error) {
	for _, f := range ExportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid export format %q: must be one of: vcf, csv, json", s)
}
