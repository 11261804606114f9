package utils

import (
	"strconv"
	"strings"
)

// ExtractAmounts scans normalized text for number-like substrings and parses
// them into decimal values, up to limit. When both "," and "." appear in a
// candidate, whichever occurs later is the decimal separator; a lone "," is
// treated as a decimal separator. Unparseable candidates are dropped.
func ExtractAmounts(text string, limit int) []float64 {
	t := strings.ToLower(NormalizeText(text))

	matches := amountRe.FindAllStringSubmatch(t, -1)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	var out []float64
	for _, m := range matches {
		x := m[1]
		if strings.Contains(x, ",") && strings.Contains(x, ".") {
			if strings.LastIndex(x, ",") > strings.LastIndex(x, ".") {
				x = strings.ReplaceAll(x, ".", "")
				x = strings.ReplaceAll(x, ",", ".")
			} else {
				x = strings.ReplaceAll(x, ",", "")
			}
		} else {
			x = strings.ReplaceAll(x, ",", ".")
		}
		if v, err := strconv.ParseFloat(x, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
