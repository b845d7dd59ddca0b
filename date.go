package celvalidate

import (
	"regexp"
	"strconv"
)

var (
	isoDateRE = regexp.MustCompile(
		`^([+\-]?[0-9]+)-([0-9]{2})-([0-9]{2})T([0-9]{2}):([0-9]{2}):([0-9]{2}(?:\.[0-9]+)?)$`)
	plainDateRE = regexp.MustCompile(
		`^\s*([+\-]?[0-9]+)\s+([0-9]{1,2})\s+([0-9]{1,2})` +
			`(?:\s+([0-9]{1,2}):([0-9]{1,2})(?::([0-9]{1,2}(?:\.[0-9]+)?))?)?\s*$`)
)

// checkDateString reports whether s is an acceptable date in either the
// ISO-8601 style "±YYYY-MM-DDThh:mm:ss[.frac]" or the space-separated
// style "±Y M D [h:m[:s]]". Years up to 1582 use the Julian leap rule
// (every fourth year), later years the Gregorian one.
func checkDateString(s string) bool {
	m := isoDateRE.FindStringSubmatch(s)
	if m == nil {
		if m = plainDateRE.FindStringSubmatch(s); m == nil {
			return false
		}
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(m[3])
	if err != nil || day < 1 {
		return false
	}

	monthDays := 31
	switch month {
	case 2:
		if isLeapYear(year) {
			monthDays = 29
		} else {
			monthDays = 28
		}
	case 4, 6, 9, 11:
		monthDays = 30
	}
	if day > monthDays {
		return false
	}

	if m[4] != "" {
		hour, err := strconv.Atoi(m[4])
		if err != nil || hour < 0 || hour > 23 {
			return false
		}
		minute, err := strconv.Atoi(m[5])
		if err != nil || minute < 0 || minute > 59 {
			return false
		}
		if m[6] != "" {
			second, err := strconv.ParseFloat(m[6], 64)
			if err != nil || second < 0 || second >= 60 {
				return false
			}
		}
	}
	return true
}

func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	return year <= 1582 || year%100 != 0 || year%400 == 0
}
