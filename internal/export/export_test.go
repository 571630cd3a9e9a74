package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []domain.Contact{
	{ID: "c1", Display: "Ana Maria Silva - Trabalho", Phone: "8299610303"},
	{ID: "c2", Display: `Bia "B"`, Phone: "82999610303"},
}

func TestRender_CSV(t *testing.T) {
	doc, err := NewRenderer().Render(domain.FormatCSV, sample)
	require.NoError(t, err)

	assert.Equal(t, "contatos.csv", doc.FileName)
	assert.Equal(t, "text/csv", doc.MIMEType)
	assert.Equal(t,
		"Nome,Número,Categoria\n"+
			`"Ana Maria Silva","+558299610303","Trabalho"`+"\n"+
			`"Bia ""B""","+5582999610303","Sem categoria"`+"\n",
		string(doc.Data))
}

func TestRender_JSON(t *testing.T) {
	doc, err := NewRenderer().Render(domain.FormatJSON, sample)
	require.NoError(t, err)
	assert.Equal(t, "application/json", doc.MIMEType)
	assert.Contains(t, string(doc.Data), "\n  {\n    \"nome\": \"Ana Maria Silva\",")

	var got []map[string]string
	require.NoError(t, json.Unmarshal(doc.Data, &got))
	assert.Equal(t, []map[string]string{
		{"nome": "Ana Maria Silva", "numero": "+558299610303", "categoria": "Trabalho"},
		{"nome": `Bia "B"`, "numero": "+5582999610303", "categoria": "Sem categoria"},
	}, got)
}

func TestRender_JSONEmptyIsArray(t *testing.T) {
	doc, err := NewRenderer().Render(domain.FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(doc.Data))
}

func TestRender_VCF(t *testing.T) {
	doc, err := NewRenderer().Render(domain.FormatVCF, sample)
	require.NoError(t, err)
	assert.Equal(t, "text/x-vcard", doc.MIMEType)

	dec := vcard.NewDecoder(strings.NewReader(string(doc.Data)))
	first, err := dec.Decode()
	require.NoError(t, err)

	assert.Equal(t, "3.0", first.Value(vcard.FieldVersion))
	assert.Equal(t, "Ana Maria Silva - Trabalho", first.PreferredValue(vcard.FieldFormattedName))
	n := first.Name()
	require.NotNil(t, n)
	assert.Equal(t, "Ana", n.GivenName)
	assert.Equal(t, "Maria Silva", n.FamilyName)
	tel := first.Get(vcard.FieldTelephone)
	require.NotNil(t, tel)
	assert.Equal(t, "+558299610303", tel.Value)
	assert.Equal(t, "CELL", tel.Params.Get(vcard.ParamType))
	assert.Equal(t, "Categoria: Trabalho", first.Value(vcard.FieldNote))

	second, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, `Bia "B" - Sem categoria`, second.PreferredValue(vcard.FieldFormattedName))
	assert.Equal(t, "Bia", second.Name().GivenName)
	assert.Equal(t, `"B"`, second.Name().FamilyName)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := NewRenderer().Render("xml", sample)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderAll_Order(t *testing.T) {
	docs, err := NewRenderer().RenderAll(sample)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "contatos.vcf", docs[0].FileName)
	assert.Equal(t, "contatos.csv", docs[1].FileName)
	assert.Equal(t, "contatos.json", docs[2].FileName)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc, err := NewRenderer().Render(domain.FormatCSV, sample)
	require.NoError(t, err)

	path, err := WriteFile(dir, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "contatos.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Data, data)
}
