package domain

import (
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"bob.smith@acme.co.uk",
		"x+tag@sub.domain.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainstring",
		"@nodomain",
		"nobody@",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Ab1", true},
		{"ab1", false},      // no uppercase
		{"Abc", false},      // no digit
		{"A1", false},       // too short
		{"", false},
		{"Password1", true},
		{"1234567", false},  // no uppercase
		{"ÜBER1", true},     // unicode uppercase counts
	}
	for _, tc := range cases {
		if got := IsValidPassword(tc.password); got != tc.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		day, month, year string
		want             bool
	}{
		{"15", "06", "1990", true},
		{"31", "02", "2023", false}, // not a real calendar date
		{"29", "02", "2024", true},  // leap year
		{"29", "02", "2023", false}, // not a leap year
		{"15", "13", "2000", false}, // month out of range
		{"00", "06", "1990", false}, // day out of range
		{"32", "01", "1990", false},
		{"15", "06", "1899", false}, // before 1900
		{"01", "01", "1900", true},
		{"1", "06", "1990", false},  // day must be 2 digits
		{"15", "6", "1990", false},  // month must be 2 digits
		{"15", "06", "90", false},   // year must be 4 digits
		{"1a", "06", "1990", false},
		{"-1", "06", "1990", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		if got := IsValidDate(tc.day, tc.month, tc.year); got != tc.want {
			t.Errorf("IsValidDate(%q, %q, %q) = %v, want %v", tc.day, tc.month, tc.year, got, tc.want)
		}
	}
}

func TestIsValidDate_RejectsFutureYear(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	day, month, year := FormatBirthDate(future)
	if IsValidDate(day, month, year) {
		t.Errorf("expected year %s to be rejected", year)
	}
}

func TestParseBirthDate_RoundTrip(t *testing.T) {
	parsed, ok := ParseBirthDate("05", "09", "1987")
	if !ok {
		t.Fatal("expected date to parse")
	}
	want := time.Date(1987, time.September, 5, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("expected %v, got %v", want, parsed)
	}

	day, month, year := FormatBirthDate(parsed)
	if day != "05" || month != "09" || year != "1987" {
		t.Errorf("FormatBirthDate round trip broke: %s-%s-%s", day, month, year)
	}
}

func TestEmployeeAge(t *testing.T) {
	today := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		birth time.Time
		want  int
	}{
		{time.Date(1996, time.August, 29, 0, 0, 0, 0, time.UTC), 30}, // birthday today
		{time.Date(1996, time.August, 30, 0, 0, 0, 0, time.UTC), 29}, // birthday tomorrow
		{time.Date(1996, time.August, 28, 0, 0, 0, 0, time.UTC), 30}, // birthday yesterday
	}
	for _, tc := range cases {
		e := &Employee{BirthDate: tc.birth}
		if got := e.Age(today); got != tc.want {
			t.Errorf("Age(%v) for birth %v = %d, want %d", today, tc.birth, got, tc.want)
		}
	}
}
