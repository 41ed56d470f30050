package cli

import (
	"strings"
	"testing"
)

func TestColorWrapping(t *testing.T) {
	if !colorEnabled {
		t.Skip("NO_COLOR set in environment")
	}

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"Green", Green, "\033[32m"},
		{"Yellow", Yellow, "\033[33m"},
		{"Red", Red, "\033[31m"},
		{"Bold", Bold, "\033[1m"},
		{"Dim", Dim, "\033[2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("text")
			if !strings.HasPrefix(got, tt.code) {
				t.Errorf("%s(%q) = %q, want prefix %q", tt.name, "text", got, tt.code)
			}
			if !strings.HasSuffix(got, "\033[0m") {
				t.Errorf("%s(%q) = %q, want reset suffix", tt.name, "text", got)
			}
			if !strings.Contains(got, "text") {
				t.Errorf("%s(%q) = %q, original text lost", tt.name, "text", got)
			}
		})
	}
}

func TestColorDisabled(t *testing.T) {
	old := colorEnabled
	colorEnabled = false
	defer func() { colorEnabled = old }()

	if got := Red("alert"); got != "alert" {
		t.Errorf("Red with colors disabled = %q, want %q", got, "alert")
	}
}
