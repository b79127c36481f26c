package utils

import "strings"

// NormalizeCEP strips a Brazilian postal code down to its digits.
// "01310-100" and "01310100" normalize to the same value.
func NormalizeCEP(cep string) string {
	var b strings.Builder
	b.Grow(len(cep))
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCEP reports whether the postal code has exactly eight digits
// after normalization.
func ValidCEP(cep string) bool {
	return len(NormalizeCEP(cep)) == 8
}

// FormatCEP renders an eight-digit postal code as "XXXXX-XXX".
// Inputs that do not normalize to eight digits are returned unchanged.
func FormatCEP(cep string) string {
	digits := NormalizeCEP(cep)
	if len(digits) != 8 {
		return cep
	}
	return digits[:5] + "-" + digits[5:]
}
