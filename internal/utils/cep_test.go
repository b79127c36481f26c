package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCEP(t *testing.T) {
	assert.Equal(t, "01310100", NormalizeCEP("01310-100"))
	assert.Equal(t, "01310100", NormalizeCEP("01310100"))
	assert.Equal(t, "01310100", NormalizeCEP(" 01310 100 "))
	assert.Equal(t, "", NormalizeCEP("abc"))
}

func TestValidCEP(t *testing.T) {
	assert.True(t, ValidCEP("01310-100"))
	assert.True(t, ValidCEP("04567000"))
	assert.False(t, ValidCEP("1310-100"))
	assert.False(t, ValidCEP(""))
	assert.False(t, ValidCEP("013101000"))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "01310-100", FormatCEP("01310-100"))
	assert.Equal(t, "invalid", FormatCEP("invalid"))
}
