// internal/platform/validator/validator_test.go
package validator

import (
	"strings"
	"testing"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"alfanumérico simple", "abc123", true},
		{"identificador real", "11ql80LUVCpuk-tyW0oZ0Pf-v0NmEbXuC5115fSAX-io", true},
		{"con guión bajo", "doc_v2", true},
		{"solo dígitos", "20260823", true},
		{"solo símbolos", "-_-", true},
		{"vacío", "", false},
		{"con espacio", "abc def", false},
		{"con dólar", "abc$", false},
		{"unicode", "docé", false},
		{"demasiado largo", strings.Repeat("a", maxIdentifierLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdentifier(tt.input); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	// La caja nunca se toca: el esquema es case-sensitive
	if got := NormalizeIdentifier("  AbC-123  "); got != "AbC-123" {
		t.Errorf("NormalizeIdentifier() = %q, want %q", got, "AbC-123")
	}
}

func TestHasMutablePosition(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abc", true},
		{"123", true},
		{"-_-", false},
		{"", false},
		{"-a-", true},
	}

	for _, tt := range tests {
		if got := HasMutablePosition(tt.input); got != tt.want {
			t.Errorf("HasMutablePosition(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
