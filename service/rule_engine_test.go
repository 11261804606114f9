package service

import (
	"testing"
	"time"

	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

func iso(t time.Time) string {
	return t.Format(isoDate)
}

func TestEvaluateRulesPassportValid(t *testing.T) {
	fields := &dto.PassportFields{
		DatesFound:      3,
		ExpiryCandidate: iso(testNow.AddDate(0, 0, 400)),
		HasMRZSignal:    true,
	}

	v := EvaluateRules(dto.DocTypePassport, fields, testNow)
	assert.Equal(t, dto.StatusOK, v.Status)
	assert.Empty(t, v.Reasons)
}

func TestEvaluateRulesPassportExpiringSoon(t *testing.T) {
	fields := &dto.PassportFields{
		ExpiryCandidate: iso(testNow.AddDate(0, 0, 60)),
	}

	v := EvaluateRules(dto.DocTypePassport, fields, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Contains(t, v.Reasons[0], "expire soon")
}

func TestEvaluateRulesPassportExpired(t *testing.T) {
	fields := &dto.PassportFields{
		ExpiryCandidate: iso(testNow.AddDate(0, 0, -30)),
	}

	v := EvaluateRules(dto.DocTypePassport, fields, testNow)
	assert.Equal(t, dto.StatusCritical, v.Status)
	assert.Contains(t, v.Reasons[0], "expired")
}

func TestEvaluateRulesPassportNoExpiryFound(t *testing.T) {
	v := EvaluateRules(dto.DocTypePassport, &dto.PassportFields{}, testNow)
	assert.Equal(t, dto.StatusCritical, v.Status)
	assert.Contains(t, v.Reasons[0], "could not be detected")
}

func TestEvaluateRulesBankStatementComplete(t *testing.T) {
	fields := &dto.BankStatementFields{
		DatesFound:  2,
		LatestDate:  iso(testNow.AddDate(0, 0, -5)),
		HasIBANTerm: true,
		IBANPages:   []int{1},
	}

	v := EvaluateRules(dto.DocTypeBankStatement, fields, testNow)
	assert.Equal(t, dto.StatusOK, v.Status)
	assert.Empty(t, v.Reasons)
}

func TestEvaluateRulesBankStatementStale(t *testing.T) {
	fields := &dto.BankStatementFields{
		DatesFound:  1,
		LatestDate:  iso(testNow.AddDate(0, 0, -45)),
		HasIBANTerm: true,
		IBANPages:   []int{1},
	}

	v := EvaluateRules(dto.DocTypeBankStatement, fields, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Contains(t, v.Reasons[0], "45 days")
}

func TestEvaluateRulesBankStatementMissingSignals(t *testing.T) {
	// No date, no IBAN anywhere: every check fires, none short-circuits.
	v := EvaluateRules(dto.DocTypeBankStatement, &dto.BankStatementFields{}, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Len(t, v.Reasons, 3)
	assert.Len(t, v.Actions, 3)
}

func TestEvaluateRulesBankStatementUnreadableDate(t *testing.T) {
	fields := &dto.BankStatementFields{
		LatestDate:  "not-a-date",
		HasIBANTerm: true,
		IBANPages:   []int{1},
	}

	v := EvaluateRules(dto.DocTypeBankStatement, fields, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Contains(t, v.Reasons[0], "format could not be read")
}

func TestEvaluateRulesInsuranceComplete(t *testing.T) {
	fields := &dto.TravelInsuranceFields{
		DatesFound:      2,
		MinDate:         "2026-06-01",
		MaxDate:         "2026-06-15",
		HasSchengenTerm: true,
		HasCoverage30k:  true,
	}

	v := EvaluateRules(dto.DocTypeTravelInsurance, fields, testNow)
	assert.Equal(t, dto.StatusOK, v.Status)
	assert.Empty(t, v.Reasons)
}

func TestEvaluateRulesInsuranceMissingCoverage(t *testing.T) {
	fields := &dto.TravelInsuranceFields{
		MinDate:         "2026-06-01",
		MaxDate:         "2026-06-15",
		HasSchengenTerm: true,
	}

	v := EvaluateRules(dto.DocTypeTravelInsurance, fields, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Contains(t, v.Reasons[0], "coverage")
}

func TestEvaluateRulesDateRangeDocuments(t *testing.T) {
	ok := EvaluateRules(dto.DocTypeFlightReservation, &dto.DateRangeFields{
		DatesFound: 2, MinDate: "2026-06-10", MaxDate: "2026-06-20",
	}, testNow)
	assert.Equal(t, dto.StatusOK, ok.Status)

	missing := EvaluateRules(dto.DocTypeAccommodation, &dto.DateRangeFields{}, testNow)
	assert.Equal(t, dto.StatusWarning, missing.Status)
	assert.Contains(t, missing.Reasons[0], "No dates")
}

func TestEvaluateRulesSupportingAdvisory(t *testing.T) {
	v := EvaluateRules(dto.DocTypeInvitationLetter, &dto.GenericFields{}, testNow)
	assert.Equal(t, dto.StatusOK, v.Status)
	assert.Contains(t, v.Reasons[0], "supporting evidence")
}

func TestEvaluateRulesIrrelevantAdvisory(t *testing.T) {
	v := EvaluateRules(dto.DocTypeUnknown, &dto.GenericFields{}, testNow)
	assert.Equal(t, dto.StatusOK, v.Status)
	assert.NotEmpty(t, v.Actions)
}

func TestEvaluateRulesMismatchedFields(t *testing.T) {
	// Wrong field record for the type degrades to a warning, never a panic.
	v := EvaluateRules(dto.DocTypePassport, &dto.GenericFields{}, testNow)
	assert.Equal(t, dto.StatusWarning, v.Status)
	assert.Contains(t, v.Reasons[0], "expected format")
}
