package export

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
)

const csvHeader = "Nome,Número,Categoria\n"

// encodeCSV quotes every field, unlike encoding/csv which quotes only when
// needed.
func encodeCSV(contacts []domain.Contact) ([]byte, error) {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, c := range contacts {
		name, category := domain.SplitDisplay(c.Display)
		b.WriteString(quote(name))
		b.WriteByte(',')
		b.WriteString(quote(domain.InternationalPhone(c.Phone)))
		b.WriteByte(',')
		b.WriteString(quote(category))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

type jsonContact struct {
	Nome      string `json:"nome"`
	Numero    string `json:"numero"`
	Categoria string `json:"categoria"`
}

func encodeJSON(contacts []domain.Contact) ([]byte, error) {
	out := make([]jsonContact, 0, len(contacts))
	for _, c := range contacts {
		name, category := domain.SplitDisplay(c.Display)
		out = append(out, jsonContact{
			Nome:      name,
			Numero:    domain.InternationalPhone(c.Phone),
			Categoria: category,
		})
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
