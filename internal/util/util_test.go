package util

import (
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "already canonical", email: "user@example.com", expected: "user@example.com"},
		{name: "mixed case", email: "User@Example.COM", expected: "user@example.com"},
		{name: "surrounding whitespace", email: "  user@example.com \n", expected: "user@example.com"},
		{name: "empty", email: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeEmail(tt.email); got != tt.expected {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestGenerateNumericCode(t *testing.T) {
	t.Parallel()

	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode(6) returned error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("GenerateNumericCode(6) = %q, want 6 digits", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("GenerateNumericCode(6) = %q, contains non-digit %q", code, r)
		}
	}
}

func TestGenerateSecureToken(t *testing.T) {
	t.Parallel()

	first, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken(32) returned error: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("GenerateSecureToken(32) = %q, want 64 hex chars", first)
	}

	second, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken(32) returned error: %v", err)
	}
	if first == second {
		t.Fatalf("GenerateSecureToken produced identical tokens: %q", first)
	}
}

func TestParseDeviceInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{
			name:      "desktop chrome on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36",
			expected:  "Desktop - Linux - Chrome",
		},
		{
			name:      "edge is not mistaken for chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36 Edg/126.0",
			expected:  "Desktop - Windows - Edge",
		},
		{
			name:      "opera is not mistaken for chrome",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36 OPR/111.0",
			expected:  "Desktop - MacOS - Opera",
		},
		{
			name:      "mobile safari on iphone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			expected:  "Mobile - iOS - Safari",
		},
		{
			name:      "ipad is a tablet",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			expected:  "Tablet - iOS - Safari",
		},
		{
			name:      "firefox on android phone",
			userAgent: "Mozilla/5.0 (Android 14; Mobile; rv:127.0) Gecko/127.0 Firefox/127.0",
			expected:  "Mobile - Android - Firefox",
		},
		{
			name:      "empty user agent",
			userAgent: "",
			expected:  "Desktop - Unknown - Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseDeviceInfo(tt.userAgent); got != tt.expected {
				t.Fatalf("ParseDeviceInfo(%q) = %q, want %q", tt.userAgent, got, tt.expected)
			}
		})
	}
}
