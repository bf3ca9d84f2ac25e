package common

import (
	"testing"
	"time"
)

// TestParseDate tests the accepted date layouts
func TestParseDate(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectError  bool
		expectedDate string
	}{
		{
			name:         "valid date format YYYY-MM-DD",
			input:        "2024-01-15",
			expectedDate: "2024-01-15",
		},
		{
			name:         "surrounding whitespace",
			input:        "  2024-01-15 ",
			expectedDate: "2024-01-15",
		},
		{
			name:         "datetime without timezone",
			input:        "2024-01-15T10:30:00",
			expectedDate: "2024-01-15",
		},
		{
			name:         "RFC3339",
			input:        "2024-01-15T10:30:00Z",
			expectedDate: "2024-01-15",
		},
		{
			name:         "RFC3339 with offset",
			input:        "2024-01-15T23:30:00+01:00",
			expectedDate: "2024-01-15",
		},
		{
			name:         "milliseconds",
			input:        "2024-01-15T10:30:00.123Z",
			expectedDate: "2024-01-15",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "invalid date format",
			input:       "invalid-date",
			expectError: true,
		},
		{
			name:        "UK ordering",
			input:       "15/01/2024",
			expectError: true,
		},
		{
			name:        "impossible day",
			input:       "2024-02-30",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDate(tc.input)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for input %q, got %v", tc.input, parsed)
				}
				if IsDate(tc.input) {
					t.Errorf("IsDate(%q) should be false", tc.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for input %q: %v", tc.input, err)
			}
			if got := parsed.Format(DateLayout); got != tc.expectedDate {
				t.Errorf("Expected date %s, got %s", tc.expectedDate, got)
			}
			if !IsDate(tc.input) {
				t.Errorf("IsDate(%q) should be true", tc.input)
			}
		})
	}
}

func TestParseDateKeepsClockTime(t *testing.T) {
	parsed, err := ParseDate("2024-01-15T10:30:45")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	if !parsed.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, parsed)
	}
}
