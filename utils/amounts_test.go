package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmountsSeparators(t *testing.T) {
	// Later of "," and "." is the decimal separator.
	amounts := ExtractAmounts("Bakiye: 1.234,56 TL", 20)
	require.NotEmpty(t, amounts)
	assert.Equal(t, 1234.56, amounts[0])

	amounts = ExtractAmounts("Balance: 1,234.56 USD", 20)
	require.NotEmpty(t, amounts)
	assert.Equal(t, 1234.56, amounts[0])

	// A lone comma is a decimal separator.
	amounts = ExtractAmounts("Tutar: 123,45", 20)
	require.NotEmpty(t, amounts)
	assert.Equal(t, 123.45, amounts[0])
}

func TestExtractAmountsPlainNumbers(t *testing.T) {
	amounts := ExtractAmounts("coverage amount 30000 eur", 20)
	assert.Contains(t, amounts, 30000.0)
}

func TestExtractAmountsLimit(t *testing.T) {
	amounts := ExtractAmounts("10 20 30 40 50 60", 3)
	assert.Len(t, amounts, 3)
}

func TestExtractAmountsEmpty(t *testing.T) {
	assert.Empty(t, ExtractAmounts("", 20))
	assert.Empty(t, ExtractAmounts("no numbers in sight", 20))
}
