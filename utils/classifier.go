package utils

import (
	"strings"

	"github.com/vizalabs/schengen-precheck/dto"
)

// DefaultConfidenceThreshold is the minimum winning score before a
// classification is trusted rather than downgraded to irrelevant_document.
const DefaultConfidenceThreshold = 2

// DetectDocType classifies normalized text into exactly one DocumentType by
// weighted keyword/pattern scoring. It never fails:
//
//   - maximal score 0 yields unknown
//   - 0 < maximal score < threshold yields irrelevant_document
//   - otherwise the strictly maximal type wins, ties going to the type
//     enumerated first in dto.DocTypes
func DetectDocType(text string, threshold int) dto.DocumentType {
	t := strings.ToLower(NormalizeText(text))
	tu := strings.ToUpper(t)

	scores := make(map[dto.DocumentType]int, len(keywordSets))
	for _, set := range keywordSets {
		score := 0
		for _, kw := range set.Keywords {
			if strings.Contains(t, kw) {
				score += set.Weight
			}
		}
		scores[set.Type] = score
	}

	// Passport pattern bonuses: MRZ-shaped lines, the literal term, country
	// signals and bare passport-number blocks.
	for _, p := range mrzPatterns {
		if p.MatchString(tu) {
			scores[dto.DocTypePassport] += 5
		}
	}
	if strings.Contains(tu, "MRZ") {
		scores[dto.DocTypePassport] += 10
	}
	if turCountryRe.MatchString(tu) {
		scores[dto.DocTypePassport] += 5
	}
	if passportNumberRe.MatchString(t) &&
		(strings.Contains(t, "passport") || strings.Contains(t, "pasaport")) {
		scores[dto.DocTypePassport] += 3
	}

	if ibanPrefixRe.MatchString(t) {
		scores[dto.DocTypeBankStatement] += 2
	}

	best := keywordSets[0].Type
	maxScore := scores[best]
	for _, set := range keywordSets[1:] {
		if scores[set.Type] > maxScore {
			best = set.Type
			maxScore = scores[set.Type]
		}
	}

	if maxScore == 0 {
		return dto.DocTypeUnknown
	}
	if maxScore < threshold {
		return dto.DocTypeIrrelevant
	}
	return best
}
