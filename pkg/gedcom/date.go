package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// Date is a calendar date read from a GEDCOM DATE value. Day and Month are
// zero when the value does not give them.
type Date struct {
	Year      int
	Month     time.Month
	Day       int
	Qualifier string // ABT, BEF, AFT, CAL, EST, BET, FROM, TO, INT or ""
}

// ParseDate reads the first calendar date out of a DATE value such as
// "12 MAR 1900", "ABT 1850", "BET 1900 AND 1910" or "MAR 1900/01".
// It reports false when no year can be found.
func ParseDate(value string) (Date, bool) {
	var d Date
	fields := strings.Fields(strings.ToUpper(value))
	if len(fields) > 0 {
		switch fields[0] {
		case "ABT", "BEF", "AFT", "CAL", "EST", "BET", "FROM", "TO", "INT":
			d.Qualifier = fields[0]
			fields = fields[1:]
		}
	}

	var nums []int
	for _, f := range fields {
		if f == "AND" || f == "TO" || strings.HasPrefix(f, "(") {
			break
		}
		if m, ok := months[f]; ok {
			d.Month = m
			continue
		}
		if n, ok := leadingInt(f); ok {
			nums = append(nums, n)
		}
	}

	switch {
	case len(nums) == 0:
		return Date{}, false
	case len(nums) == 1:
		d.Year = nums[0]
	default:
		d.Day, d.Year = nums[0], nums[1]
	}
	if d.Month == 0 || d.Day < 0 || d.Day > 31 {
		d.Day = 0
	}
	return d, d.Year > 0
}

// leadingInt parses the digits at the start of s, so that dual-dated years
// like "1750/51" read as 1750.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// Complete reports whether year, month and day are all known.
func (d Date) Complete() bool { return d.Year > 0 && d.Month > 0 && d.Day > 0 }

// Time returns the date at midnight UTC, defaulting a missing month or day to 1.
func (d Date) Time() time.Time {
	month, day := d.Month, d.Day
	if month == 0 {
		month = time.January
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, month, day, 0, 0, 0, 0, time.UTC)
}

// String formats the known parts as YYYY, YYYY-MM or YYYY-MM-DD.
func (d Date) String() string {
	switch {
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
}
