package utils

import (
	"testing"

	"github.com/vizalabs/schengen-precheck/dto"
	"github.com/stretchr/testify/assert"
)

func TestDetectDocTypeIsTotal(t *testing.T) {
	assert.Equal(t, dto.DocTypeUnknown, DetectDocType("", DefaultConfidenceThreshold))
	assert.Equal(t, dto.DocTypeUnknown, DetectDocType("qwrt qwrt qwrt", DefaultConfidenceThreshold))
}

func TestDetectDocTypeThresholdBoundary(t *testing.T) {
	// One weight-2 keyword scores exactly at the threshold.
	assert.Equal(t, dto.DocTypeBankStatement, DetectDocType("swift", DefaultConfidenceThreshold))

	// One weight-1 keyword scores below it.
	assert.Equal(t, dto.DocTypeIrrelevant, DetectDocType("form", DefaultConfidenceThreshold))
}

func TestDetectDocTypeBankStatement(t *testing.T) {
	text := "Hesap Özeti\nIBAN: TR33 0006 1005 1978 6457 8413 26\nBakiye: 12.500,00 TL"
	assert.Equal(t, dto.DocTypeBankStatement, DetectDocType(text, DefaultConfidenceThreshold))
}

func TestDetectDocTypePassportMRZ(t *testing.T) {
	// No passport keywords at all; the MRZ pattern bonuses alone must carry it.
	text := "P<TURDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<"
	assert.Equal(t, dto.DocTypePassport, DetectDocType(text, DefaultConfidenceThreshold))
}

func TestDetectDocTypeInsurance(t *testing.T) {
	text := "Travel insurance policy, Schengen coverage 30.000 EUR, medical expenses"
	assert.Equal(t, dto.DocTypeTravelInsurance, DetectDocType(text, DefaultConfidenceThreshold))
}

func TestDetectDocTypeTieBreak(t *testing.T) {
	// One passport keyword and one bank keyword tie at 2; the earlier
	// enumerated type wins.
	text := "ekstre nationality"
	assert.Equal(t, dto.DocTypePassport, DetectDocType(text, DefaultConfidenceThreshold))
}

func TestDetectDocTypeDeterministic(t *testing.T) {
	text := "hotel booking check-in guest accommodation"
	first := DetectDocType(text, DefaultConfidenceThreshold)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectDocType(text, DefaultConfidenceThreshold))
	}
	assert.Equal(t, dto.DocTypeAccommodation, first)
}
