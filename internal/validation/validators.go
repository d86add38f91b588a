package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest year accepted as a Date value
const MinYear = 1900

// Date is a calendar day without time of day
type Date struct {
	Year  int
	Month int
	Day   int
}

// Compare orders two dates chronologically (-1, 0, 1)
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Quarter returns 1..4 for the date's month
func (d Date) Quarter() int {
	return (d.Month-1)/3 + 1
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// ParseDate parses a strict YYYY-MM-DD value: four-digit year >= 1900,
// month 1-12 and a day that exists in that month (leap years included).
// Surrounding spaces and tabs are ignored, as in ParseNumeric.
func ParseDate(value string) (Date, bool) {
	value = TrimBlank(value)
	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		return Date{}, false
	}
	year, ok := digits(value[0:4])
	if !ok {
		return Date{}, false
	}
	month, ok := digits(value[5:7])
	if !ok {
		return Date{}, false
	}
	day, ok := digits(value[8:10])
	if !ok {
		return Date{}, false
	}
	if year < MinYear || month < 1 || month > 12 || day < 1 {
		return Date{}, false
	}
	if day > DaysInMonth(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// IsValidDate reports whether value parses with ParseDate
func IsValidDate(value string) bool {
	_, ok := ParseDate(value)
	return ok
}

// DaysInMonth uses the calendar from package time, which handles leap years
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// ParseNumeric parses a floating-point value, ignoring surrounding spaces
// and tabs. The rest must be consumed; NaN and infinities are rejected so
// comparisons stay total.
func ParseNumeric(value string) (float64, bool) {
	v, err := strconv.ParseFloat(TrimBlank(value), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsBlank reports whether s is empty or only spaces and tabs
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

// TrimBlank strips surrounding spaces and tabs
func TrimBlank(s string) string {
	return strings.Trim(s, " \t")
}
