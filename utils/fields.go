package utils

import (
	"strings"
	"time"

	"github.com/vizalabs/schengen-precheck/dto"
)

// DateScanLimit caps general-purpose date extraction per document.
const DateScanLimit = 20

// AmountScanLimit caps amount extraction per document.
const AmountScanLimit = 20

// ExtractFieldsByType produces the type-specific structured field record for
// a classified document. Every record carries enough signal for the matching
// rule-engine branch to run without re-reading raw text. The generic fallback
// path never fails, whatever the input.
func ExtractFieldsByType(docType dto.DocumentType, text string, pages []dto.PageText, now time.Time) dto.DocumentFields {
	t := NormalizeText(text)
	tl := strings.ToLower(t)

	dates := ExtractDates(t, DateScanLimit)
	amounts := ExtractAmounts(t, AmountScanLimit)

	switch docType {
	case dto.DocTypeBankStatement:
		f := &dto.BankStatementFields{
			DatesFound:   len(dates),
			HasIBANTerm:  hasIBANSignal(tl),
			AmountsFound: len(amounts),
			IBANPages:    ibanPages(pages),
		}
		if len(dates) > 0 {
			f.LatestDate = maxDate(dates).Format(isoDate)
		}
		if len(amounts) > 0 {
			m := amounts[0]
			for _, a := range amounts[1:] {
				if a > m {
					m = a
				}
			}
			f.MaxAmount = &m
		}
		return f

	case dto.DocTypeTravelInsurance:
		f := &dto.TravelInsuranceFields{
			DatesFound:      len(dates),
			HasSchengenTerm: strings.Contains(tl, "schengen"),
			HasCoverage30k: strings.Contains(tl, "30000") ||
				strings.Contains(tl, "30.000") ||
				strings.Contains(tl, "30,000") ||
				strings.Contains(tl, "30 000"),
		}
		if len(dates) > 0 {
			f.MinDate = minDate(dates).Format(isoDate)
			f.MaxDate = maxDate(dates).Format(isoDate)
		}
		return f

	case dto.DocTypePassport:
		f := &dto.PassportFields{
			DatesFound: len(dates),
			HasMRZSignal: strings.Contains(tl, "p<") ||
				strings.Contains(tl, "mrz") ||
				mrzLineRe.MatchString(strings.ToUpper(t)),
		}
		if expiry, ok := ExtractPassportExpiry(text, now); ok {
			f.ExpiryCandidate = expiry.Format(isoDate)
		}
		return f

	case dto.DocTypeFlightReservation, dto.DocTypeAccommodation, dto.DocTypeApplicationForm:
		f := &dto.DateRangeFields{DatesFound: len(dates)}
		if len(dates) > 0 {
			f.MinDate = minDate(dates).Format(isoDate)
			f.MaxDate = maxDate(dates).Format(isoDate)
		}
		return f
	}

	return &dto.GenericFields{
		DatesFound:   len(dates),
		AmountsFound: len(amounts),
		TextLength:   len(tl),
	}
}

// hasIBANSignal reports whether lowered text carries the literal "iban" term
// or a full TR IBAN once spacing is stripped.
func hasIBANSignal(tl string) bool {
	return strings.Contains(tl, "iban") ||
		ibanFullRe.MatchString(strings.ReplaceAll(tl, " ", ""))
}

// ibanPages returns the page numbers that independently carry IBAN evidence,
// so the rule engine can tell the user which page to re-upload.
func ibanPages(pages []dto.PageText) []int {
	out := []int{}
	for _, p := range pages {
		tlPage := strings.ToLower(NormalizeText(p.Text))
		if hasIBANSignal(tlPage) {
			out = append(out, p.Page)
		}
	}
	return out
}
