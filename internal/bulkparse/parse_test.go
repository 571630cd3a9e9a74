package bulkparse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Pairs(t *testing.T) {
	pairs, err := Parse("  Ana Silva - Trabalho \n 82 9961-0303\r\nBia\n+55 (82) 99961-0303\n")
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, Pair{Line: 1, Name: "Ana Silva - Trabalho", RawPhone: "82 9961-0303", Phone: "8299610303"}, pairs[0])
	assert.Equal(t, 3, pairs[1].Line)
	assert.Equal(t, "82999610303", pairs[1].Phone)
	assert.True(t, pairs[0].Valid())
}

func TestParse_OddLineCount(t *testing.T) {
	pairs, err := Parse("Ana\n8299610303\nBia")
	require.Error(t, err)
	assert.Nil(t, pairs)
	assert.True(t, errors.Is(err, ErrOddLineCount))

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Lines)
}

func TestParse_BlankLineCounts(t *testing.T) {
	_, err := Parse("Ana\n\n8299610303")
	assert.ErrorIs(t, err, ErrOddLineCount)
}

func TestParse_Empty(t *testing.T) {
	pairs, err := Parse("   \n  ")
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestParseRemoval_DropsEmptyEntries(t *testing.T) {
	entries, err := ParseRemoval("Ana - Casa\n8299610303\n\n123\nBia\nsem número")
	require.NoError(t, err)
	assert.Equal(t, []domain.BatchEntry{
		{Display: "Ana - Casa", Phone: "8299610303"},
	}, entries)
}

func TestApply_TalliesEachOutcome(t *testing.T) {
	rec := domain.NewUserRecord(1)
	_, err := rec.Add("Ana", "8299610303")
	require.NoError(t, err)

	pairs, err := Parse("ANA\n8299610303\nBia\n123\nCaio\n82999610303\n\n8299610304\ncaio\n82999610303")
	require.NoError(t, err)

	s, err := Apply(pairs, rec.Add)
	require.NoError(t, err)

	require.Len(t, s.Added, 1)
	assert.Equal(t, "Caio", s.Added[0].Display)
	require.Len(t, s.Duplicates, 2)
	assert.Equal(t, "ANA", s.Duplicates[0].Name)
	assert.Equal(t, "caio", s.Duplicates[1].Name)
	require.Len(t, s.Invalid, 1)
	assert.Equal(t, "123", s.Invalid[0].RawPhone)
	assert.Equal(t, 1, s.Skipped)
	assert.Len(t, rec.Contacts, 2)
}

func TestApply_StopsOnUnexpectedError(t *testing.T) {
	boom := fmt.Errorf("storage: %w", errors.New("boom"))
	pairs, err := Parse("Ana\n8299610303\nBia\n8299610304")
	require.NoError(t, err)

	calls := 0
	s, err := Apply(pairs, func(string, string) (domain.Contact, error) {
		calls++
		return domain.Contact{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Empty(t, s.Added)
}
