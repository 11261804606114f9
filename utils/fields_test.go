package utils

import (
	"testing"

	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldsBankStatement(t *testing.T) {
	now := date(2026, 3, 15)
	text := "Hesap Özeti\nIBAN: TR33 0006 1005 1978 6457 8413 26\nBakiye: 1.234,56 TL\nTarih: 10.03.2026"
	pages := []dto.PageText{{Page: 1, Text: text}}

	fields := ExtractFieldsByType(dto.DocTypeBankStatement, text, pages, now)
	f, ok := fields.(*dto.BankStatementFields)
	require.True(t, ok)

	assert.True(t, f.HasIBANTerm)
	assert.Equal(t, "2026-03-10", f.LatestDate)
	assert.Equal(t, []int{1}, f.IBANPages)
	assert.Greater(t, f.DatesFound, 0)
	assert.NotNil(t, f.MaxAmount)
}

func TestExtractFieldsBankStatementIBANPages(t *testing.T) {
	now := date(2026, 3, 15)
	pages := []dto.PageText{
		{Page: 1, Text: "Hesap Özeti ekstre"},
		{Page: 2, Text: "IBAN: TR33 0006 1005 1978 6457 8413 26"},
		{Page: 3, Text: "Bakiye: 500,00 TL"},
	}
	text := pages[0].Text + "\n" + pages[1].Text + "\n" + pages[2].Text

	fields := ExtractFieldsByType(dto.DocTypeBankStatement, text, pages, now)
	f, ok := fields.(*dto.BankStatementFields)
	require.True(t, ok)

	assert.Equal(t, []int{2}, f.IBANPages)
}

func TestExtractFieldsTravelInsurance(t *testing.T) {
	now := date(2026, 3, 15)
	text := "Schengen travel insurance policy\nCoverage: 30.000 EUR\nValid 01.06.2026 - 15.06.2026"

	fields := ExtractFieldsByType(dto.DocTypeTravelInsurance, text, nil, now)
	f, ok := fields.(*dto.TravelInsuranceFields)
	require.True(t, ok)

	assert.True(t, f.HasSchengenTerm)
	assert.True(t, f.HasCoverage30k)
	assert.Equal(t, "2026-06-01", f.MinDate)
	assert.Equal(t, "2026-06-15", f.MaxDate)
}

func TestExtractFieldsPassport(t *testing.T) {
	now := date(2026, 1, 1)
	text := "P<TURDOE<<JOHN<U12345678<9001015M3001012<<<<<<<<<<<<<<04"

	fields := ExtractFieldsByType(dto.DocTypePassport, text, nil, now)
	f, ok := fields.(*dto.PassportFields)
	require.True(t, ok)

	assert.True(t, f.HasMRZSignal)
	assert.Equal(t, "2030-01-01", f.ExpiryCandidate)
}

func TestExtractFieldsDateRange(t *testing.T) {
	now := date(2026, 3, 15)
	text := "Flight itinerary\nDeparture: 10.06.2026\nArrival: 20.06.2026"

	fields := ExtractFieldsByType(dto.DocTypeFlightReservation, text, nil, now)
	f, ok := fields.(*dto.DateRangeFields)
	require.True(t, ok)

	assert.Equal(t, "2026-06-10", f.MinDate)
	assert.Equal(t, "2026-06-20", f.MaxDate)
}

func TestExtractFieldsGenericFallbackNeverFails(t *testing.T) {
	now := date(2026, 3, 15)

	for _, docType := range []dto.DocumentType{dto.DocTypeUnknown, dto.DocTypeIrrelevant, dto.DocTypeInvitationLetter} {
		fields := ExtractFieldsByType(docType, "", nil, now)
		f, ok := fields.(*dto.GenericFields)
		require.True(t, ok, string(docType))
		assert.Equal(t, 0, f.DatesFound)
		assert.Equal(t, 0, f.TextLength)
	}
}
