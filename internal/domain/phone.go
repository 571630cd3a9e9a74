package domain

import "strings"

// CountryPrefix is the Brazilian calling code. It is stripped from incoming
// numbers and prepended again on export.
const CountryPrefix = "55"

// NormalizePhone keeps only the ASCII digits of raw. A leading country prefix
// is dropped when the digits that remain form a full 10 or 11 digit number,
// so normalizing an already normalized number is a no-op.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, CountryPrefix) && validPhoneLength(len(digits)-len(CountryPrefix)) {
		digits = digits[len(CountryPrefix):]
	}
	return digits
}

// ValidPhone reports whether digits is a normalized number: 10 or 11 ASCII
// digits (area code + subscriber number), no country code.
func ValidPhone(digits string) bool {
	if !validPhoneLength(len(digits)) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// InternationalPhone renders normalized digits with the "+55" prefix.
func InternationalPhone(digits string) string {
	return "+" + CountryPrefix + digits
}

func validPhoneLength(n int) bool {
	return n == 10 || n == 11
}
