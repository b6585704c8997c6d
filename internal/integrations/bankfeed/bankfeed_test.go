package bankfeed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbahq/cashsignal/internal/models"
)

func TestParseStatement(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<statement>
  <entry>
    <date>2026-08-01</date>
    <amount>150000</amount>
    <type>credit</type>
    <description>progress payment</description>
  </entry>
  <entry>
    <date>2026-08-03</date>
    <amount>42000.50</amount>
    <type>debit</type>
  </entry>
</statement>`)

	entries, err := ParseStatement(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, models.TransactionIncome, entries[0].Type)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, "2026-08-01", entries[0].Date.Format("2006-01-02"))
	assert.Equal(t, "progress payment", entries[0].Description)

	assert.Equal(t, models.TransactionExpense, entries[1].Type)
	assert.True(t, entries[1].Amount.Equal(decimal.RequireFromString("42000.50")))
	assert.Empty(t, entries[1].Description)
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not xml", "not xml at all <"},
		{"empty statement", `<statement></statement>`},
		{"missing amount", `<statement><entry><date>2026-08-01</date><type>credit</type></entry></statement>`},
		{"bad date", `<statement><entry><date>01.08.2026</date><amount>1</amount><type>credit</type></entry></statement>`},
		{"unknown type", `<statement><entry><date>2026-08-01</date><amount>1</amount><type>transfer</type></entry></statement>`},
		{"negative amount", `<statement><entry><date>2026-08-01</date><amount>-5</amount><type>debit</type></entry></statement>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatement([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
