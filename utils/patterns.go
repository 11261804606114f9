package utils

import (
	"regexp"

	"github.com/vizalabs/schengen-precheck/dto"
)

// Static pattern tables for classification and extraction. Keyword sets are
// bilingual (English/Turkish) because upstream OCR runs both language passes.
// These are data, not code: tuning a keyword or weight needs no logic change.

type keywordSet struct {
	Type     dto.DocumentType
	Weight   int
	Keywords []string
}

// keywordSets is ordered the same way as dto.DocTypes; the classifier relies
// on that order for stable tie-breaking.
var keywordSets = []keywordSet{
	{
		Type:   dto.DocTypePassport,
		Weight: 2,
		Keywords: []string{
			"passport", "passport no", "passport number", "passport nr",
			"nationality", "nationality code",
			"birth", "date of birth", "birth date", "born",
			"surname", "family name", "last name",
			"given name", "first name", "name",
			"document no", "document number", "doc no", "doc number",
			"date of issue", "date of expiry", "expiry date", "expires",
			"issue date", "issued", "expiry", "expire",
			"place of birth", "birth place",
			"sex", "gender", "male", "female",
			"authority", "issuing authority",
			"type", "type/p", "type p",
			"republic of turkey", "türkiye cumhuriyeti",
			"pasaport", "pasaport no", "pasaport numarası",
			"doğum", "doğum tarihi", "doğum yeri",
			"soyadı", "soy isim",
			"isim", "adı", "ad soyad",
			"belge no", "belge numarası",
			"veriliş tarihi", "veriliş",
			"son geçerlilik", "geçerlilik tarihi",
			"cinsiyet", "erkek", "kadın",
			"veren makam", "makam",
			"türkiye", "türk",
		},
	},
	{
		Type:   dto.DocTypeBankStatement,
		Weight: 2,
		Keywords: []string{
			"account statement", "statement", "ekstre", "banka",
			"iban", "swift", "hesap özeti", "balance", "bakiye",
			"available", "account", "transactions", "transaction",
			"debit", "credit", "opening balance", "closing balance",
		},
	},
	{
		Type:   dto.DocTypeTravelInsurance,
		Weight: 2,
		Keywords: []string{
			"insurance", "sigorta", "policy", "poliçe", "coverage", "kapsam",
			"medical expenses", "emergency", "schengen",
			"30,000", "30000", "30.000", "30 000", "eur", "euro",
		},
	},
	{
		Type:   dto.DocTypeFlightReservation,
		Weight: 2,
		Keywords: []string{
			"itinerary", "flight", "pnr", "e-ticket", "boarding",
			"departure", "arrival", "uçuş", "rezervasyon", "bilet",
			"thy", "pegasus", "lufthansa", "airlines", "ticket number",
		},
	},
	{
		Type:   dto.DocTypeAccommodation,
		Weight: 2,
		Keywords: []string{
			"hotel", "reservation", "booking", "check-in", "check out", "check-out",
			"guest", "accommodation", "konaklama", "oda", "gece",
			"airbnb", "host", "property", "nights",
		},
	},
	{
		Type:   dto.DocTypeApplicationForm,
		Weight: 1,
		Keywords: []string{
			"application form", "visa application", "schengen visa",
			"form", "başvuru formu", "intended date", "intended",
			"number of entries", "duration of stay",
		},
	},
	{
		Type:   dto.DocTypeInvitationLetter,
		Weight: 2,
		Keywords: []string{
			"invitation", "invited", "davet", "davet mektubu", "invitation letter",
			"hosting", "host", "i will host", "will host",
			"evimde kal", "evimde konaklayacak", "konaklamasını sağlayacağım",
			"address", "adres", "signature", "imza",
		},
	},
	{
		Type:   dto.DocTypeSponsorshipLetter,
		Weight: 2,
		Keywords: []string{
			"sponsor", "sponsorship", "financial support",
			"will cover expenses", "cover the expenses", "all expenses",
			"masraflarını karşılayacağım", "tüm masraflarını", "finansal destek",
		},
	},
	{
		Type:     dto.DocTypeSponsorBankStatement,
		Weight:   2,
		Keywords: []string{"sponsor bank", "sponsor's bank", "sponsor banka", "guarantor", "guarantee"},
	},
	{
		Type:     dto.DocTypeSponsorIDDocument,
		Weight:   2,
		Keywords: []string{"copy of id", "id card", "identity card", "kimlik fotokopisi", "nüfus cüzdanı", "passport copy"},
	},
	{
		Type:   dto.DocTypeEmployerLetter,
		Weight: 2,
		Keywords: []string{
			"employer", "işveren", "company letter", "employment letter",
			"izin verilmiştir", "paid leave", "unpaid leave", "leave granted",
			"position", "department", "start date", "salary",
		},
	},
	{
		Type:     dto.DocTypeSalarySlip,
		Weight:   2,
		Keywords: []string{"pay slip", "payslip", "salary slip", "bordro", "maaş bordrosu", "net pay", "gross pay"},
	},
	{
		Type:     dto.DocTypeSGKStatement,
		Weight:   2,
		Keywords: []string{"sgk", "4a", "hizmet dökümü", "service breakdown", "sigortalılık", "prim"},
	},
	{
		Type:     dto.DocTypeStudentCertificate,
		Weight:   2,
		Keywords: []string{"student certificate", "öğrenci belgesi", "enrolled", "enrollment", "öğrencidir", "faculty", "department"},
	},
	{
		Type:     dto.DocTypeTranscript,
		Weight:   2,
		Keywords: []string{"transcript", "gpa", "grade point", "not ortalaması", "ders", "course", "credits", "ects"},
	},
	{
		Type:     dto.DocTypeResidencePermit,
		Weight:   2,
		Keywords: []string{"residence permit", "oturum izni", "ikamet izni", "residence card"},
	},
	{
		Type:     dto.DocTypeMarriageCertificate,
		Weight:   2,
		Keywords: []string{"marriage certificate", "evlilik cüzdanı", "evlenme kayıt", "marriage registration"},
	},
	{
		Type:     dto.DocTypeFamilyRegistry,
		Weight:   2,
		Keywords: []string{"family registry", "nüfus kayıt örneği", "vukuatlı", "population registry"},
	},
}

// MRZ line patterns, matched against uppercased text. Each hit adds +5 to the
// passport score.
var mrzPatterns = []*regexp.Regexp{
	regexp.MustCompile(`P<[A-Z<]{2,}`),
	regexp.MustCompile(`P<[A-Z]{3}[A-Z0-9<]{20,}`),
	regexp.MustCompile(`[A-Z0-9<]{30,}`),
	regexp.MustCompile(`<{5,}`),
	regexp.MustCompile(`[A-Z]{3}[0-9]{6}[0-9][A-Z0-9]{3}[0-9]{11}[0-9]`),
}

var (
	// Country signals for Turkish passports, +5 when any matches.
	turCountryRe = regexp.MustCompile(`TUR[0-9]{6}|TURKEY|TÜRKİYE`)
	// 6-9 digit blocks look like passport numbers when a passport term is present.
	passportNumberRe = regexp.MustCompile(`\b[0-9]{6,9}\b`)
	// IBAN country prefix, +2 for bank statements.
	ibanPrefixRe = regexp.MustCompile(`\btr\d{2}\b`)
	// Full TR IBAN (22 digits), matched against space-stripped text.
	ibanFullRe = regexp.MustCompile(`\btr\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{2}\b`)
	// MRZ line start, used to cut candidate lines out of uppercased text.
	mrzLineRe = regexp.MustCompile(`P<[A-Z<]{2,}[A-Z0-9<]{20,}`)

	sixDigitRe        = regexp.MustCompile(`(\d{6})`)
	boundedSixDigitRe = regexp.MustCompile(`\b(\d{6})\b`)
	eightDigitRe      = regexp.MustCompile(`\b(\d{8})\b`)
)

const monthNameAlternation = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|january|february|march|april|june|july|august|september|october|november|december|ocak|şubat|mart|nisan|mayıs|haziran|temmuz|ağustos|eylül|ekim|kasım|aralık`

// datePatterns is the ordered scan list for date-shaped substrings. Order
// matters: extraction stops once the limit is reached.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{2}[./-]\d{2}[./-]\d{4})\b`),
	regexp.MustCompile(`\b(\d{4}[./-]\d{2}[./-]\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2}[./-]\d{1,2}[./-]\d{4})\b`),
	regexp.MustCompile(`\b(\d{2}[./-]\d{2}[./-]\d{2})\b`),
	regexp.MustCompile(`\b(\d{4}[./-]\d{1,2}[./-]\d{1,2})\b`),
	regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`),
	regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
	regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`),
	regexp.MustCompile(`(\d{4}\.\d{2}\.\d{2})`),
	regexp.MustCompile(`(\d{4}/\d{2}/\d{2})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})`),
	regexp.MustCompile(`(\d{8})`),
	regexp.MustCompile(`(\d{6})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:` + monthNameAlternation + `)\s+\d{4})`),
	regexp.MustCompile(`(?i)(\d{4}\s+(?:` + monthNameAlternation + `)\s+\d{1,2})`),
}

// amountRe matches number-like substrings with optional thousands grouping,
// decimals and currency suffix. Applied to lowercased normalized text.
var amountRe = regexp.MustCompile(`\b(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})|\d{2,})(?:\s?(?:eur|€|try|tl|usd|\$))?\b`)

type monthName struct {
	Name  string
	Month int
}

// monthNames lists the supported month vocabularies, English first, then
// Turkish; matching is case-insensitive.
var monthNames = []monthName{
	{"jan", 1}, {"feb", 2}, {"mar", 3}, {"apr", 4},
	{"may", 5}, {"jun", 6}, {"jul", 7}, {"aug", 8},
	{"sep", 9}, {"oct", 10}, {"nov", 11}, {"dec", 12},
	{"january", 1}, {"february", 2}, {"march", 3}, {"april", 4},
	{"june", 6}, {"july", 7}, {"august", 8}, {"september", 9},
	{"october", 10}, {"november", 11}, {"december", 12},
	{"ocak", 1}, {"şubat", 2}, {"mart", 3}, {"nisan", 4},
	{"mayıs", 5}, {"haziran", 6}, {"temmuz", 7}, {"ağustos", 8},
	{"eylül", 9}, {"ekim", 10}, {"kasım", 11}, {"aralık", 12},
}

// expiryKeywords is the bilingual vocabulary that anchors the passport expiry
// window scan.
var expiryKeywords = []string{
	"expiry", "expires", "expire", "expiry date", "exp date",
	"date of expiry", "valid until", "valid to", "valid thru",
	"validity", "validity date", "expiration", "expiration date",
	"geçerlilik", "geçerlilik tarihi", "son geçerlilik",
	"geçerli", "geçerli tarih", "bitiş tarihi", "son geçerli",
	"exp", "exp.", "valid",
}
