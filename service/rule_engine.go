package service

import (
	"fmt"
	"time"

	"github.com/vizalabs/schengen-precheck/dto"
)

// bankStatementMaxAgeDays is how old a bank statement may be before it is
// flagged as stale.
const bankStatementMaxAgeDays = 30

// passportExpiryWarningDays flags passports expiring soon; Schengen expects
// three months of validity beyond the return date.
const passportExpiryWarningDays = 120

const isoDate = "2006-01-02"

// EvaluateRules runs the fixed decision procedure for a classified document
// and its extracted fields. Status starts at ok and only escalates as
// findings accumulate; all checks within a type run, none short-circuit.
// Supporting and irrelevant documents get a fixed advisory without field
// inspection.
func EvaluateRules(docType dto.DocumentType, fields dto.DocumentFields, now time.Time) dto.Verdict {
	switch dto.RoleOf(docType) {
	case dto.RoleSupportingOptional:
		return dto.Verdict{
			Status:  dto.StatusOK,
			Reasons: []string{"The uploaded document is supporting evidence; it may not be on the mandatory document list."},
			Actions: []string{"Depending on your situation it can strengthen your file. Upload the mandatory documents for the pre-check as well."},
		}
	case dto.RoleIrrelevant:
		return dto.Verdict{
			Status:  dto.StatusOK,
			Reasons: []string{"The uploaded document does not appear to be within the scope of this Schengen pre-check."},
			Actions: []string{"Upload your passport, bank statement, travel health insurance, flight reservation and accommodation document for the pre-check."},
		}
	}

	var findings []dto.Verdict

	switch docType {
	case dto.DocTypeBankStatement:
		if f, ok := fields.(*dto.BankStatementFields); ok {
			findings = bankStatementChecks(f, now)
		} else {
			findings = append(findings, unreadableFieldsFinding())
		}

	case dto.DocTypeTravelInsurance:
		if f, ok := fields.(*dto.TravelInsuranceFields); ok {
			findings = insuranceChecks(f)
		} else {
			findings = append(findings, unreadableFieldsFinding())
		}

	case dto.DocTypePassport:
		if f, ok := fields.(*dto.PassportFields); ok {
			findings = passportChecks(f, now)
		} else {
			findings = append(findings, unreadableFieldsFinding())
		}

	case dto.DocTypeFlightReservation, dto.DocTypeAccommodation, dto.DocTypeApplicationForm:
		if f, ok := fields.(*dto.DateRangeFields); ok {
			if f.MinDate == "" && f.MaxDate == "" {
				findings = append(findings, warning(
					"No dates could be detected in the document.",
					"Upload the page where the dates are clearly visible.",
				))
			}
		} else {
			findings = append(findings, unreadableFieldsFinding())
		}

	default:
		findings = append(findings, warning(
			"The document type could not be fully evaluated; only a generic check was performed.",
			"Upload a clearer copy or make sure it is the right document.",
		))
	}

	verdict := dto.Verdict{Status: dto.StatusOK, Reasons: []string{}, Actions: []string{}}
	for _, f := range findings {
		verdict = dto.CombineVerdicts(verdict, f)
	}
	return verdict
}

func bankStatementChecks(f *dto.BankStatementFields, now time.Time) []dto.Verdict {
	var findings []dto.Verdict

	if f.LatestDate == "" {
		findings = append(findings, warning(
			"No date could be detected on the bank statement.",
			"Re-upload the statement with the date section clearly visible.",
		))
	} else if latest, err := time.Parse(isoDate, f.LatestDate); err != nil {
		findings = append(findings, warning(
			"The bank statement date format could not be read.",
			"Upload the statement at a higher resolution.",
		))
	} else if ageDays := int(now.Sub(latest).Hours() / 24); ageDays > bankStatementMaxAgeDays {
		findings = append(findings, warning(
			fmt.Sprintf("The bank statement appears to be dated %d days ago; it may not be current.", ageDays),
			"Upload a bank statement issued within the last 30 days.",
		))
	}

	if len(f.IBANPages) == 0 {
		findings = append(findings, warning(
			"No IBAN information was detected on any page of the bank statement.",
			"Include the page where the IBAN is visible.",
		))
	}

	if !f.HasIBANTerm {
		findings = append(findings, warning(
			"Could not confirm this is a genuine account statement (weak IBAN/account signal).",
			"Also include the page showing the IBAN or account details.",
		))
	}

	return findings
}

func insuranceChecks(f *dto.TravelInsuranceFields) []dto.Verdict {
	var findings []dto.Verdict

	if f.MinDate == "" || f.MaxDate == "" {
		findings = append(findings, warning(
			"The insurance start/end dates could not be detected.",
			"Upload the policy page showing the coverage period.",
		))
	}
	if !f.HasCoverage30k {
		findings = append(findings, warning(
			"No EUR 30,000 coverage signal was found in the insurance document (OCR may have missed it).",
			"Upload a clear view of the section showing the coverage amount.",
		))
	}
	if !f.HasSchengenTerm {
		findings = append(findings, warning(
			"The term 'Schengen' was not detected in the insurance document (it may be a different kind of policy).",
			"Make sure you uploaded a Schengen travel health insurance certificate.",
		))
	}

	return findings
}

func passportChecks(f *dto.PassportFields, now time.Time) []dto.Verdict {
	if f.ExpiryCandidate == "" {
		return []dto.Verdict{critical(
			"The passport expiry date could not be detected.",
			"Upload the passport identity page at a higher resolution.",
		)}
	}

	expiry, err := time.Parse(isoDate, f.ExpiryCandidate)
	if err != nil {
		return []dto.Verdict{warning(
			"The passport date format could not be read.",
			"Upload the passport page more clearly.",
		)}
	}

	if expiry.Before(now) {
		return []dto.Verdict{critical(
			"The passport appears to be expired.",
			"You must apply with a valid passport.",
		)}
	}
	if expiry.Before(now.AddDate(0, 0, passportExpiryWarningDays)) {
		return []dto.Verdict{warning(
			"The passport appears to expire soon (Schengen requires validity 3 months beyond the return date).",
			"Check the passport validity against your return date.",
		)}
	}

	return nil
}

func warning(reason, action string) dto.Verdict {
	return dto.Verdict{Status: dto.StatusWarning, Reasons: []string{reason}, Actions: []string{action}}
}

func critical(reason, action string) dto.Verdict {
	return dto.Verdict{Status: dto.StatusCritical, Reasons: []string{reason}, Actions: []string{action}}
}

func unreadableFieldsFinding() dto.Verdict {
	return warning(
		"The extracted document fields were not in the expected format.",
		"Upload a clearer copy of the document.",
	)
}
