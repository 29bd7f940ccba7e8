// internal/core/domain/analysis_test.go
package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeIdentifier(t *testing.T) {
	a := AnalyzeIdentifier("11ql80LUVCpuk-tyW0oZ0Pf-v0NmEbXuC5115fSAX-io")

	if a.Length != 44 {
		t.Errorf("Length = %d, want 44", a.Length)
	}
	if !a.HasHyphens {
		t.Error("HasHyphens = false, want true")
	}
	if a.HasUnderscores {
		t.Error("HasUnderscores = true, want false")
	}
	if a.AlphanumericOnly {
		t.Error("AlphanumericOnly = true, want false")
	}
	if !a.StartsWithDigit {
		t.Error("StartsWithDigit = false, want true")
	}
	if a.CharacterCounts["1"] != 5 {
		t.Errorf("CharacterCounts[1] = %d, want 5", a.CharacterCounts["1"])
	}
}

func TestAnalyzeIdentifierRuns(t *testing.T) {
	a := AnalyzeIdentifier("ab12cd-34")

	wantDigits := []string{"12", "34"}
	if !reflect.DeepEqual(a.DigitRuns, wantDigits) {
		t.Errorf("DigitRuns = %v, want %v", a.DigitRuns, wantDigits)
	}

	wantLetters := []string{"ab", "cd"}
	if !reflect.DeepEqual(a.LetterRuns, wantLetters) {
		t.Errorf("LetterRuns = %v, want %v", a.LetterRuns, wantLetters)
	}
}

func TestAnalyzeIdentifierEmpty(t *testing.T) {
	a := AnalyzeIdentifier("")
	if a.Length != 0 || a.StartsWithDigit || len(a.DigitRuns) != 0 {
		t.Errorf("análisis de vacío inesperado: %+v", a)
	}
}

func TestParseStrategies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Strategy
		wantErr error
	}{
		{"una estrategia", "last_char", []Strategy{StrategyLastChar}, nil},
		{
			"dedupe preservando orden",
			"last_digit,last_char,last_digit",
			[]Strategy{StrategyLastDigit, StrategyLastChar},
			nil,
		},
		{"desconocida", "pattern_based", nil, ErrInvalidStrategy},
		{"vacía", "", nil, ErrNoStrategies},
		{"solo comas", ",,", nil, ErrNoStrategies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategies(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseStrategies(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategies(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStrategies(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentifierValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      Identifier
		wantErr error
	}{
		{"válido con guiones", "11ql80LUVCpuk-tyW0oZ0Pf", nil},
		{"válido con guión bajo", "doc_v2", nil},
		{"vacío", "", ErrEmptyBaseID},
		{"con espacio", "a b", ErrInvalidIdentifier},
		{"con dólar", "abc$", ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) error = %v", tt.id, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
