package domain

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is a shared stateless instance; validator.Validate is safe for
// concurrent use once constructed.
var validate = validator.New()

// IsValidEmail reports whether s is syntactically a valid email address.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return validate.Var(s, "email") == nil
}

// IsValidPassword reports whether s satisfies the password policy:
// length >= 3, at least one digit and at least one uppercase letter.
func IsValidPassword(s string) bool {
	if len(s) < 3 {
		return false
	}
	var hasDigit, hasUpper bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasUpper
}

// IsValidDate reports whether day/month/year form a valid birth date.
// See ParseBirthDate for the exact rules.
func IsValidDate(day, month, year string) bool {
	_, ok := ParseBirthDate(day, month, year)
	return ok
}

// ParseBirthDate validates the fixed-width date components and returns the
// calendar date at UTC midnight. Components must be exactly 2/2/4 digit
// strings ("01", not "1"), day in 1..31, month in 1..12, year in
// 1900..current year, and the combination must be a real calendar date
// (day 31 of month 02 is rejected even though each component is in range).
func ParseBirthDate(day, month, year string) (time.Time, bool) {
	d, okDay := parseFixedWidth(day, 2)
	m, okMonth := parseFixedWidth(month, 2)
	y, okYear := parseFixedWidth(year, 4)
	if !okDay || !okMonth || !okYear {
		return time.Time{}, false
	}
	if d < 1 || d > 31 || m < 1 || m > 12 {
		return time.Time{}, false
	}
	if y < 1900 || y > time.Now().Year() {
		return time.Time{}, false
	}

	// time.Date normalises overflow (Feb 31 becomes Mar 2/3), so a
	// round-trip mismatch means the combination is not a real date.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// FormatBirthDate splits a birth date back into the zero-padded wire
// components.
func FormatBirthDate(t time.Time) (day, month, year string) {
	return fmt.Sprintf("%02d", t.Day()), fmt.Sprintf("%02d", int(t.Month())), fmt.Sprintf("%04d", t.Year())
}

func parseFixedWidth(s string, width int) (int, bool) {
	if len(s) != width {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
