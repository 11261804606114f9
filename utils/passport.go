package utils

import (
	"strconv"
	"strings"
	"time"
)

// expiryWindow is how far around an expiry keyword the date scan looks.
const expiryWindow = 200

// ExtractPassportExpiry resolves a passport expiry date from OCR text. The
// heuristic deliberately over-generates candidates: a missed expired passport
// is worse than a false positive, so recall wins over precision.
//
// Layers, in order:
//  1. all dates in the text, with a widened scan limit
//  2. if none, bare 8-digit (YYYYMMDD/DDMMYYYY) and 6-digit (YYMMDD) blocks
//  3. dates inside a ±200 character window around expiry-related keywords
//  4. 6-digit blocks inside MRZ-shaped lines; with two or more dates per
//     line the second is the expiry (MRZ order is birth date then expiry),
//     a lone future date also counts
//  5. prefer the maximum future candidate, else the maximum candidate, else
//     the same rule over all dates from layers 1-2
func ExtractPassportExpiry(text string, now time.Time) (time.Time, bool) {
	t := NormalizeText(text)
	tl := strings.ToLower(t)
	tu := strings.ToUpper(t)

	allDates := ExtractDates(text, 200)
	if len(allDates) == 0 {
		allDates = bareNumericDates(t)
	}

	var candidates []time.Time
	for _, keyword := range expiryKeywords {
		for _, window := range keywordWindows(tl, keyword) {
			for _, p := range datePatterns {
				for _, m := range p.FindAllStringSubmatch(window, -1) {
					s := m[0]
					if len(m) > 1 {
						s = m[1]
					}
					if d, ok := ParseDate(s); ok {
						candidates = append(candidates, d)
					}
				}
			}
		}
	}

	for _, line := range mrzLineRe.FindAllString(tu, -1) {
		var mrzDates []time.Time
		for _, m := range sixDigitRe.FindAllStringSubmatch(line, -1) {
			if d, ok := parseYYMMDD(m[1]); ok {
				mrzDates = append(mrzDates, d)
			}
		}
		if len(mrzDates) >= 2 {
			candidates = append(candidates, mrzDates[1])
		} else if len(mrzDates) == 1 && mrzDates[0].After(now) {
			candidates = append(candidates, mrzDates[0])
		}
	}

	if len(candidates) > 0 {
		return preferFutureMax(candidates, now), true
	}
	if len(allDates) > 0 {
		return preferFutureMax(allDates, now), true
	}
	return time.Time{}, false
}

// bareNumericDates interprets standalone 8- and 6-digit blocks as dates when
// no regular date was found anywhere in the text.
func bareNumericDates(t string) []time.Time {
	var dates []time.Time

	for _, m := range eightDigitRe.FindAllStringSubmatch(t, -1) {
		s := m[1]
		// YYYYMMDD
		year, _ := strconv.Atoi(s[0:4])
		month, _ := strconv.Atoi(s[4:6])
		day, _ := strconv.Atoi(s[6:8])
		if year >= 1900 && year <= 2100 {
			if d, ok := makeDate(year, month, day); ok {
				dates = append(dates, d)
			}
		}
		// DDMMYYYY
		day, _ = strconv.Atoi(s[0:2])
		month, _ = strconv.Atoi(s[2:4])
		year, _ = strconv.Atoi(s[4:8])
		if year >= 1900 && year <= 2100 {
			if d, ok := makeDate(year, month, day); ok {
				dates = append(dates, d)
			}
		}
	}

	for _, m := range boundedSixDigitRe.FindAllStringSubmatch(t, -1) {
		if d, ok := parseYYMMDD(m[1]); ok {
			dates = append(dates, d)
		}
	}

	return dates
}

// parseYYMMDD parses a 6-digit block with the two-digit-year window rule.
func parseYYMMDD(s string) (time.Time, bool) {
	if len(s) != 6 {
		return time.Time{}, false
	}
	yy, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[2:4])
	day, _ := strconv.Atoi(s[4:6])
	return makeDate(windowYear(yy), month, day)
}

// keywordWindows returns the ±expiryWindow character slices around every
// occurrence of keyword in text.
func keywordWindows(text, keyword string) []string {
	var windows []string
	for start := 0; ; {
		i := strings.Index(text[start:], keyword)
		if i < 0 {
			break
		}
		i += start
		lo := i - expiryWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + len(keyword) + expiryWindow
		if hi > len(text) {
			hi = len(text)
		}
		windows = append(windows, text[lo:hi])
		start = i + len(keyword)
	}
	return windows
}

// preferFutureMax picks the maximum date among those after now; when nothing
// is in the future it falls back to the overall maximum. With no birth/expiry
// distinction this can select a birth date when both are past, which is the
// inherited behavior.
func preferFutureMax(dates []time.Time, now time.Time) time.Time {
	var future []time.Time
	for _, d := range dates {
		if d.After(now) {
			future = append(future, d)
		}
	}
	if len(future) > 0 {
		return maxDate(future)
	}
	return maxDate(dates)
}
