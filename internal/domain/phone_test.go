package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone_FormattingVariants(t *testing.T) {
	cases := []string{
		"+55 82 9961-0303",
		"82 9961-0303",
		"8299610303",
		"(82) 9961-0303",
		"55 82 99610303",
		"82996103 03",
	}
	for _, in := range cases {
		assert.Equal(t, "8299610303", NormalizePhone(in), "input %q", in)
	}
}

func TestNormalizePhone_ElevenDigits(t *testing.T) {
	assert.Equal(t, "82999610303", NormalizePhone("+55 (82) 99961-0303"))
	assert.Equal(t, "82999610303", NormalizePhone("82999610303"))
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	cases := []string{"8299610303", "82999610303", "5599610303", "55999610303", "+55 55 99961-0303"}
	for _, in := range cases {
		once := NormalizePhone(in)
		assert.True(t, ValidPhone(once), "input %q normalized to %q", in, once)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestNormalizePhone_AreaCode55Kept(t *testing.T) {
	// DDD 55 is a real area code; the prefix only goes when a full number remains.
	assert.Equal(t, "5599610303", NormalizePhone("55 9961-0303"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("8299610303"))
	assert.True(t, ValidPhone("82999610303"))
	assert.False(t, ValidPhone("829961030"))
	assert.False(t, ValidPhone("829996103031"))
	assert.False(t, ValidPhone("82996l0303"))
	assert.False(t, ValidPhone(""))
}

func TestInternationalPhone(t *testing.T) {
	assert.Equal(t, "+558299610303", InternationalPhone("8299610303"))
}
