package dto

// DocumentType identifies what kind of visa document a file was classified as.
type DocumentType string

const (
	// CORE
	DocTypePassport          DocumentType = "passport"
	DocTypeBankStatement     DocumentType = "bank_statement"
	DocTypeTravelInsurance   DocumentType = "travel_insurance"
	DocTypeFlightReservation DocumentType = "flight_reservation"
	DocTypeAccommodation     DocumentType = "accommodation"
	DocTypeApplicationForm   DocumentType = "application_form"

	// SUPPORTING
	DocTypeInvitationLetter     DocumentType = "invitation_letter"
	DocTypeSponsorshipLetter    DocumentType = "sponsorship_letter"
	DocTypeSponsorBankStatement DocumentType = "sponsor_bank_statement"
	DocTypeSponsorIDDocument    DocumentType = "sponsor_id_document"
	DocTypeEmployerLetter       DocumentType = "employer_letter"
	DocTypeSalarySlip           DocumentType = "salary_slip"
	DocTypeSGKStatement         DocumentType = "sgk_statement"
	DocTypeStudentCertificate   DocumentType = "student_certificate"
	DocTypeTranscript           DocumentType = "transcript"
	DocTypeResidencePermit      DocumentType = "residence_permit"
	DocTypeMarriageCertificate  DocumentType = "marriage_certificate"
	DocTypeFamilyRegistry       DocumentType = "family_registry"

	// OTHER
	DocTypeIrrelevant DocumentType = "irrelevant_document"
	DocTypeUnknown    DocumentType = "unknown"
)

// DocTypes is the canonical enumeration order. The classifier breaks score
// ties toward the earlier entry, so this order is part of the contract.
var DocTypes = []DocumentType{
	DocTypePassport,
	DocTypeBankStatement,
	DocTypeTravelInsurance,
	DocTypeFlightReservation,
	DocTypeAccommodation,
	DocTypeApplicationForm,
	DocTypeInvitationLetter,
	DocTypeSponsorshipLetter,
	DocTypeSponsorBankStatement,
	DocTypeSponsorIDDocument,
	DocTypeEmployerLetter,
	DocTypeSalarySlip,
	DocTypeSGKStatement,
	DocTypeStudentCertificate,
	DocTypeTranscript,
	DocTypeResidencePermit,
	DocTypeMarriageCertificate,
	DocTypeFamilyRegistry,
	DocTypeIrrelevant,
	DocTypeUnknown,
}

// DocumentRole says how a document type participates in the rule engine.
type DocumentRole string

const (
	RoleCoreRequired       DocumentRole = "CORE_REQUIRED"
	RoleSupportingOptional DocumentRole = "SUPPORTING_OPTIONAL"
	RoleIrrelevant         DocumentRole = "IRRELEVANT"
)

var docRoles = map[DocumentType]DocumentRole{
	DocTypePassport:          RoleCoreRequired,
	DocTypeBankStatement:     RoleCoreRequired,
	DocTypeTravelInsurance:   RoleCoreRequired,
	DocTypeFlightReservation: RoleCoreRequired,
	DocTypeAccommodation:     RoleCoreRequired,
	DocTypeApplicationForm:   RoleCoreRequired,

	DocTypeInvitationLetter:     RoleSupportingOptional,
	DocTypeSponsorshipLetter:    RoleSupportingOptional,
	DocTypeSponsorBankStatement: RoleSupportingOptional,
	DocTypeSponsorIDDocument:    RoleSupportingOptional,
	DocTypeEmployerLetter:       RoleSupportingOptional,
	DocTypeSalarySlip:           RoleSupportingOptional,
	DocTypeSGKStatement:         RoleSupportingOptional,
	DocTypeStudentCertificate:   RoleSupportingOptional,
	DocTypeTranscript:           RoleSupportingOptional,
	DocTypeResidencePermit:      RoleSupportingOptional,
	DocTypeMarriageCertificate:  RoleSupportingOptional,
	DocTypeFamilyRegistry:       RoleSupportingOptional,

	DocTypeIrrelevant: RoleIrrelevant,
	DocTypeUnknown:    RoleIrrelevant,
}

// RoleOf maps a document type to its role. Unmapped types are IRRELEVANT.
func RoleOf(t DocumentType) DocumentRole {
	if role, ok := docRoles[t]; ok {
		return role
	}
	return RoleIrrelevant
}

// RuleStatus is the traffic-light status of a verdict, ordered
// ok < warning < critical.
type RuleStatus string

const (
	StatusOK       RuleStatus = "ok"
	StatusWarning  RuleStatus = "warning"
	StatusCritical RuleStatus = "critical"
)

func (s RuleStatus) severity() int {
	switch s {
	case StatusCritical:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// MaxStatus returns the more severe of two statuses.
func MaxStatus(a, b RuleStatus) RuleStatus {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// Verdict is the outcome of a rule evaluation: a status plus human-readable
// reasons and remediation actions.
type Verdict struct {
	Status  RuleStatus `json:"status"`
	Reasons []string   `json:"reasons"`
	Actions []string   `json:"actions"`
}

// CombineVerdicts merges two verdicts: the status escalates monotonically to
// the maximum and reasons/actions concatenate in encounter order. It is
// associative, and commutative on status, so it can be folded over any
// sequence of findings.
func CombineVerdicts(a, b Verdict) Verdict {
	out := Verdict{Status: MaxStatus(a.Status, b.Status)}
	out.Reasons = append(out.Reasons, a.Reasons...)
	out.Reasons = append(out.Reasons, b.Reasons...)
	out.Actions = append(out.Actions, a.Actions...)
	out.Actions = append(out.Actions, b.Actions...)
	return out
}

// PageText is one page of OCR output, scoped to a single request.
type PageText struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// DocumentFields is the closed set of type-specific extraction records.
type DocumentFields interface {
	isDocumentFields()
}

// BankStatementFields carries the signals the bank statement rules need.
type BankStatementFields struct {
	DatesFound   int      `json:"dates_found"`
	LatestDate   string   `json:"latest_date,omitempty"`
	HasIBANTerm  bool     `json:"has_iban_term"`
	AmountsFound int      `json:"amounts_found"`
	MaxAmount    *float64 `json:"max_amount,omitempty"`
	IBANPages    []int    `json:"iban_pages"`
}

// TravelInsuranceFields carries the signals the insurance rules need.
type TravelInsuranceFields struct {
	DatesFound      int    `json:"dates_found"`
	MinDate         string `json:"min_date,omitempty"`
	MaxDate         string `json:"max_date,omitempty"`
	HasSchengenTerm bool   `json:"has_schengen_term"`
	HasCoverage30k  bool   `json:"has_coverage_30k"`
}

// PassportFields carries the passport expiry candidate and MRZ signal.
type PassportFields struct {
	DatesFound      int    `json:"dates_found"`
	ExpiryCandidate string `json:"expiry_candidate,omitempty"`
	HasMRZSignal    bool   `json:"has_mrz_signal"`
}

// DateRangeFields is shared by flight reservations, accommodation documents
// and application forms.
type DateRangeFields struct {
	DatesFound int    `json:"dates_found"`
	MinDate    string `json:"min_date,omitempty"`
	MaxDate    string `json:"max_date,omitempty"`
}

// GenericFields is the total fallback for supporting, irrelevant and unknown
// documents.
type GenericFields struct {
	DatesFound   int `json:"dates_found"`
	AmountsFound int `json:"amounts_found"`
	TextLength   int `json:"text_length"`
}

func (*BankStatementFields) isDocumentFields()   {}
func (*TravelInsuranceFields) isDocumentFields() {}
func (*PassportFields) isDocumentFields()        {}
func (*DateRangeFields) isDocumentFields()       {}
func (*GenericFields) isDocumentFields()         {}

// FileMeta is the KVKK-safe metadata kept about an uploaded file. It never
// contains document content.
type FileMeta struct {
	Filename    string  `json:"filename"`
	ContentType string  `json:"content_type"`
	SizeMB      float64 `json:"size_mb"`
}

// PolicyNoRawData marks payloads guaranteed to contain only derived signals,
// never raw document bytes or raw OCR text.
const PolicyNoRawData = "no_raw_docs_no_raw_text"

// PolicyPreview is the downstream-consumable bundle of derived signals for
// one file.
type PolicyPreview struct {
	DocType    DocumentType   `json:"doc_type"`
	DocRole    DocumentRole   `json:"doc_role"`
	Fields     DocumentFields `json:"fields"`
	RuleResult Verdict        `json:"rule_result"`
	Policy     string         `json:"policy"`
}

// FileResult is the per-file outcome, in upload order.
type FileResult struct {
	File              FileMeta       `json:"file"`
	DocType           DocumentType   `json:"doc_type"`
	DocRole           DocumentRole   `json:"doc_role"`
	PagesProcessed    int            `json:"pages_processed"`
	Fields            DocumentFields `json:"fields"`
	Rule              Verdict        `json:"rule"`
	LLMPayloadPreview PolicyPreview  `json:"llm_payload_preview"`
}
