// Package export serializes a contact list into the downloadable formats.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// ErrUnknownFormat is returned for a format without a serializer.
var ErrUnknownFormat = errors.New("unknown export format")

// Document is one rendered file.
type Document struct {
	Format   domain.ExportFormat
	FileName string
	MIMEType string
	Data     []byte
}

type serializer struct {
	fileName string
	mimeType string
	encode   func([]domain.Contact) ([]byte, error)
}

var serializers = map[domain.ExportFormat]serializer{
	domain.FormatVCF:  {fileName: "contatos.vcf", mimeType: "text/x-vcard", encode: encodeVCF},
	domain.FormatCSV:  {fileName: "contatos.csv", mimeType: "text/csv", encode: encodeCSV},
	domain.FormatJSON: {fileName: "contatos.json", mimeType: "application/json", encode: encodeJSON},
}

// Renderer renders contacts into any supported format. The zero value is
// ready to use.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render serializes contacts in store order.
func (*Renderer) Render(format domain.ExportFormat, contacts []domain.Contact) (Document, error) {
	s, ok := serializers[format]
	if !ok {
		return Document{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	data, err := s.encode(contacts)
	if err != nil {
		return Document{}, fmt.Errorf("render %s: %w", format, err)
	}
	return Document{Format: format, FileName: s.fileName, MIMEType: s.mimeType, Data: data}, nil
}

// RenderAll renders every format in domain.ExportFormats order.
func (r *Renderer) RenderAll(contacts []domain.Contact) ([]Document, error) {
	docs := make([]Document, 0, len(domain.ExportFormats))
	for _, f := range domain.ExportFormats {
		d, err := r.Render(f, contacts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// WriteFile stores doc under dir and returns the written path.
func WriteFile(dir string, doc Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, doc.FileName)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", doc.FileName, err)
	}
	return path, nil
}
