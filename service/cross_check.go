package service

import (
	"time"

	"github.com/vizalabs/schengen-precheck/dto"
)

// insuranceBufferDays is the margin insurance coverage should extend beyond
// the flight range on both ends.
const insuranceBufferDays = 1

// CrossDocumentCheck verifies date-range consistency between the flight,
// accommodation and insurance documents of a bundle. The last-seen instance
// of each type wins when duplicates exist. With fewer than two of the three
// present, or when nothing fires, it contributes no verdict.
func CrossDocumentCheck(results []dto.FileResult) *dto.Verdict {
	var flight, accommodation, insurance *dto.FileResult
	for i := range results {
		switch results[i].DocType {
		case dto.DocTypeFlightReservation:
			flight = &results[i]
		case dto.DocTypeAccommodation:
			accommodation = &results[i]
		case dto.DocTypeTravelInsurance:
			insurance = &results[i]
		}
	}

	present := 0
	for _, r := range []*dto.FileResult{flight, accommodation, insurance} {
		if r != nil {
			present++
		}
	}
	if present < 2 {
		return nil
	}

	fStart, fEnd, fOK := resultDateRange(flight)
	aStart, aEnd, aOK := resultDateRange(accommodation)
	iStart, iEnd, iOK := resultDateRange(insurance)

	verdict := dto.Verdict{Status: dto.StatusOK}

	// Accommodation must fully contain the flight range.
	if fOK && aOK {
		if aStart.After(fStart) || aEnd.Before(fEnd) {
			verdict = dto.CombineVerdicts(verdict, warning(
				"Accommodation dates do not fully cover the flight dates.",
				"Make sure the accommodation booking spans the outbound and return dates.",
			))
		}
	}

	// Insurance must contain the flight range with a buffer on both ends.
	if fOK && iOK {
		if iStart.After(fStart.AddDate(0, 0, -insuranceBufferDays)) ||
			iEnd.Before(fEnd.AddDate(0, 0, insuranceBufferDays)) {
			verdict = dto.CombineVerdicts(verdict, warning(
				"Travel insurance dates do not cover the flight dates with enough buffer.",
				"Insurance should start at least 1 day before departure and end 1 day after return.",
			))
		}
	}

	if len(verdict.Reasons) == 0 {
		return nil
	}
	return &verdict
}

// resultDateRange pulls a parsable (start, end) pair out of a file result's
// fields. Unparseable or missing endpoints disable the checks that need them.
func resultDateRange(r *dto.FileResult) (time.Time, time.Time, bool) {
	if r == nil {
		return time.Time{}, time.Time{}, false
	}

	var minISO, maxISO string
	switch f := r.Fields.(type) {
	case *dto.DateRangeFields:
		minISO, maxISO = f.MinDate, f.MaxDate
	case *dto.TravelInsuranceFields:
		minISO, maxISO = f.MinDate, f.MaxDate
	default:
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(isoDate, minISO)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(isoDate, maxISO)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
