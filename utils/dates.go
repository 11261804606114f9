package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type dateLayout struct {
	layout    string
	shortYear bool
}

// dateLayouts is the ordered strict-parse list; the first layout that parses
// wins. Layouts use non-padded day/month so both "5.6.2024" and "05.06.2024"
// parse.
var dateLayouts = []dateLayout{
	{"2.1.2006", false},
	{"2/1/2006", false},
	{"2-1-2006", false},
	{"2006-1-2", false},
	{"2006/1/2", false},
	{"2006.1.2", false},
	{"2.1.06", true},
	{"2/1/06", true},
	{"2-1-06", true},
	{"06-1-2", true},
	{"06/1/2", true},
	{"06.1.2", true},
}

var (
	dayMonthNameYearRe = map[string]*regexp.Regexp{}
	yearMonthNameDayRe = map[string]*regexp.Regexp{}
)

func init() {
	for _, m := range monthNames {
		dayMonthNameYearRe[m.Name] = regexp.MustCompile(`(\d{1,2})\s+` + regexp.QuoteMeta(m.Name) + `\s+(\d{4})`)
		yearMonthNameDayRe[m.Name] = regexp.MustCompile(`(\d{4})\s+` + regexp.QuoteMeta(m.Name) + `\s+(\d{1,2})`)
	}
}

// windowYear maps a two-digit year into the documented window:
// <50 goes to the 2000s, >=50 to the 1900s.
func windowYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// makeDate builds a calendar-valid date or reports failure. time.Date
// normalizes out-of-range components (Feb 31 becomes Mar 3), so the result is
// verified against the inputs.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// ParseDate strictly parses a date-shaped substring against the supported
// numeric layouts and month-name forms. Two-digit years are windowed via
// windowYear regardless of the stdlib's own pivot.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, dl := range dateLayouts {
		d, err := time.Parse(dl.layout, s)
		if err != nil {
			continue
		}
		if dl.shortYear {
			yy := d.Year() % 100
			var ok bool
			d, ok = makeDate(windowYear(yy), int(d.Month()), d.Day())
			if !ok {
				continue
			}
		}
		return d, true
	}

	lower := strings.ToLower(s)
	for _, m := range monthNames {
		if match := dayMonthNameYearRe[m.Name].FindStringSubmatch(lower); match != nil {
			day, _ := strconv.Atoi(match[1])
			year, _ := strconv.Atoi(match[2])
			if day >= 1 && day <= 31 && year >= 1900 && year <= 2100 {
				if d, ok := makeDate(year, m.Month, day); ok {
					return d, true
				}
			}
		}
		if match := yearMonthNameDayRe[m.Name].FindStringSubmatch(lower); match != nil {
			year, _ := strconv.Atoi(match[1])
			day, _ := strconv.Atoi(match[2])
			if day >= 1 && day <= 31 && year >= 1900 && year <= 2100 {
				if d, ok := makeDate(year, m.Month, day); ok {
					return d, true
				}
			}
		}
	}

	return time.Time{}, false
}

// ExtractDates scans normalized text against the ordered date patterns and
// returns parsed dates in pattern-scan order, up to limit. Substrings that
// match a pattern but fail strict parsing are silently dropped.
func ExtractDates(text string, limit int) []time.Time {
	t := NormalizeText(text)
	var found []time.Time
	for _, p := range datePatterns {
		for _, m := range p.FindAllStringSubmatch(t, -1) {
			s := m[0]
			if len(m) > 1 {
				s = m[1]
			}
			if d, ok := ParseDate(s); ok {
				found = append(found, d)
			}
			if len(found) >= limit {
				return found
			}
		}
	}
	return found
}

// minDate and maxDate scan a non-empty slice; callers guard for emptiness.
func minDate(dates []time.Time) time.Time {
	m := dates[0]
	for _, d := range dates[1:] {
		if d.Before(m) {
			m = d
		}
	}
	return m
}

func maxDate(dates []time.Time) time.Time {
	m := dates[0]
	for _, d := range dates[1:] {
		if d.After(m) {
			m = d
		}
	}
	return m
}

// isoDate is the wire format for extracted dates.
const isoDate = "2006-01-02"
