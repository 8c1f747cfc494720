package types

import "testing"

func TestFlagEmoji(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "portugal", code: "PT", expected: "🇵🇹"},
		{name: "lowercase", code: "pt", expected: "🇵🇹"},
		{name: "padded", code: " de ", expected: "🇩🇪"},
		{name: "united states", code: "US", expected: "🇺🇸"},
		{name: "empty", code: "", expected: ""},
		{name: "too long", code: "PRT", expected: ""},
		{name: "digits", code: "1A", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FlagEmoji(tt.code)
			if result != tt.expected {
				t.Errorf("FlagEmoji(%q) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}
