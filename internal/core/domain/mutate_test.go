// internal/core/domain/mutate_test.go
package domain

import (
	"fmt"
	"testing"
)

func TestMutateLastChar(t *testing.T) {
	tests := []struct {
		name string
		base Identifier
		step int
		want Identifier
		ok   bool
	}{
		{"incremento simple", "11ql80LUVCpuk", 1, "11ql80LUVCpul", true},
		{"tres pasos", "11ql80LUVCpuk", 3, "11ql80LUVCpun", true},
		{"acarreo dígito a letra", "AB9", 1, "AC0", true},
		{"acarreo minúscula a mayúscula", "Az", 1, "Ba", true},
		{"acarreo salta símbolo", "a-z", 1, "b-a", true},
		{"acarreo por el borde izquierdo agota", "z", 1, "", false},
		{"símbolo final nunca genera", "abc-", 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mutate(tt.base, StrategyLastChar, tt.step)
			if ok != tt.ok {
				t.Fatalf("Mutate(%q, last_char, %d) ok = %v, want %v", tt.base, tt.step, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Mutate(%q, last_char, %d) = %q, want %q", tt.base, tt.step, got, tt.want)
			}
		})
	}
}

func TestMutateLastDigit(t *testing.T) {
	tests := []struct {
		name string
		base Identifier
		step int
		want Identifier
		ok   bool
	}{
		{"incremento simple", "a1b2", 1, "a1b3", true},
		{"acarreo salta letras hacia el dígito anterior", "a1b2", 8, "a2b0", true},
		{"acarreo sin dígito a la izquierda se descarta", "ABC9", 1, "ABC0", true},
		{"envolvimiento con paso mayor", "ABC9", 3, "ABC2", true},
		{"sin dígitos nunca genera", "abcdef", 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mutate(tt.base, StrategyLastDigit, tt.step)
			if ok != tt.ok {
				t.Fatalf("Mutate(%q, last_digit, %d) ok = %v, want %v", tt.base, tt.step, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Mutate(%q, last_digit, %d) = %q, want %q", tt.base, tt.step, got, tt.want)
			}
		})
	}
}

func TestMutateLastLetter(t *testing.T) {
	tests := []struct {
		name string
		base Identifier
		step int
		want Identifier
		ok   bool
	}{
		{"incremento simple", "a1b2", 1, "a1c2", true},
		{"acarreo entre letras preservando caja", "a1b2", 25, "b1a2", true},
		{"mayúscula envuelve y acarrea a minúscula", "aZ", 1, "bA", true},
		{"sin letras nunca genera", "123-456", 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mutate(tt.base, StrategyLastLetter, tt.step)
			if ok != tt.ok {
				t.Fatalf("Mutate(%q, last_letter, %d) ok = %v, want %v", tt.base, tt.step, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Mutate(%q, last_letter, %d) = %q, want %q", tt.base, tt.step, got, tt.want)
			}
		})
	}
}

func TestMutateAllPositions(t *testing.T) {
	tests := []struct {
		name string
		base Identifier
		step int
		want Identifier
		ok   bool
	}{
		{"primera posición mutable", "ab-1", 1, "bb-1", true},
		{"segunda posición mutable", "ab-1", 2, "ac-1", true},
		{"tercera posición salta el símbolo", "ab-1", 3, "ab-2", true},
		{"paso más allá de las posiciones agota", "ab-1", 4, "", false},
		{"dígito envuelve sin acarreo", "9z", 1, "0z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mutate(tt.base, StrategyAllPositions, tt.step)
			if ok != tt.ok {
				t.Fatalf("Mutate(%q, all_positions, %d) ok = %v, want %v", tt.base, tt.step, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Mutate(%q, all_positions, %d) = %q, want %q", tt.base, tt.step, got, tt.want)
			}
		})
	}
}

func TestMutateDeterminism(t *testing.T) {
	// La generación es una función pura de (base, estrategia, paso)
	base := Identifier("1ctvfdHRoRxdH87W7GlfKqQWOn0PbtrMjToHvD0x7DQc")

	for _, strategy := range AllStrategies() {
		for step := 1; step <= 10; step++ {
			t.Run(fmt.Sprintf("%s_step%d", strategy, step), func(t *testing.T) {
				first, okFirst := Mutate(base, strategy, step)
				second, okSecond := Mutate(base, strategy, step)
				if first != second || okFirst != okSecond {
					t.Errorf("Mutate no determinista: (%q, %v) != (%q, %v)", first, okFirst, second, okSecond)
				}
			})
		}
	}
}

func TestMutateInvalidInputs(t *testing.T) {
	if got, ok := Mutate("", StrategyLastChar, 1); ok || got != "" {
		t.Errorf("Mutate con base vacía = (%q, %v), want (\"\", false)", got, ok)
	}
	if got, ok := Mutate("abc", StrategyLastChar, 0); ok || got != "" {
		t.Errorf("Mutate con paso 0 = (%q, %v), want (\"\", false)", got, ok)
	}
	if got, ok := Mutate("abc", Strategy("bogus"), 1); ok || got != "" {
		t.Errorf("Mutate con estrategia inválida = (%q, %v), want (\"\", false)", got, ok)
	}
}
