package utils

import (
	"regexp"
	"strings"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe      = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText canonicalizes raw OCR text: null bytes become spaces,
// carriage returns become newlines, runs of horizontal whitespace collapse to
// one space and 3+ consecutive newlines collapse to exactly two. It is total
// and idempotent.
func NormalizeText(text string) string {
	t := strings.ReplaceAll(text, "\x00", " ")
	t = strings.ReplaceAll(t, "\r", "\n")
	t = horizontalSpaceRe.ReplaceAllString(t, " ")
	t = blankLinesRe.ReplaceAllString(t, "\n\n")
	return strings.TrimSpace(t)
}
