package cli

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/spf13/pflag"
)

// formatAll selects every export format at once.
const formatAll = "todos"

// sortValue parses --sort. Empty means the user's stored order.
type sortValue struct {
	mode domain.SortMode
}

var _ pflag.Value = (*sortValue)(nil)

func (v *sortValue) String() string { return string(v.mode) }
func (v *sortValue) Type() string   { return "padrao|alfabetica" }

func (v *sortValue) Set(s string) error {
	m, err := domain.ParseSortMode(s)
	if err != nil {
		return err
	}
	v.mode = m
	return nil
}

// formatValue parses --format: one export format or "todos".
type formatValue struct {
	all    bool
	format domain.ExportFormat
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string {
	if v.all {
		return formatAll
	}
	return string(v.format)
}

func (v *formatValue) Type() string { return "vcf|csv|json|todos" }

func (v *formatValue) Set(s string) error {
	if s == formatAll {
		v.all, v.format = true, ""
		return nil
	}
	f, err := domain.ParseExportFormat(s)
	if err != nil {
		return fmt.Errorf("%w (or %s)", err, formatAll)
	}
	v.all, v.format = false, f
	return nil
}
