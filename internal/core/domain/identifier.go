// internal/core/domain/identifier.go
package domain

import (
	"fmt"

	"docsweep/internal/platform/validator"
)

// Identifier representa el nombre opaco de un documento. No tiene semántica
// más allá de sus caracteres indexados por posición: dígitos, letras (ambas
// cajas) y los dos símbolos del esquema de nombres ('-' y '_').
type Identifier string

// String retorna la representación string del identificador.
func (id Identifier) String() string {
	return string(id)
}

// IsEmpty indica si el identificador está vacío.
func (id Identifier) IsEmpty() bool {
	return len(id) == 0
}

// Validate verifica que el identificador sea sintácticamente válido dentro
// del alfabeto del esquema.
func (id Identifier) Validate() error {
	if id.IsEmpty() {
		return ErrEmptyBaseID
	}
	if !validator.IsIdentifier(string(id)) {
		return fmt.Errorf("%w: %s", ErrInvalidIdentifier, id)
	}
	return nil
}

// charClass clasifica un carácter según su clase de incremento. Los
// incrementos nunca cruzan de clase: un dígito sigue siendo dígito, una
// letra conserva su caja, y los símbolos no son incrementables.
type charClass int

const (
	classSymbol charClass = iota // '-' y '_': se mapean a sí mismos
	classDigit
	classUpper
	classLower
)

// classOf retorna la clase de incremento de un carácter.
func classOf(c byte) charClass {
	switch {
	case c >= '0' && c <= '9':
		return classDigit
	case c >= 'A' && c <= 'Z':
		return classUpper
	case c >= 'a' && c <= 'z':
		return classLower
	default:
		return classSymbol
	}
}

// isMutable indica si la posición participa en mutaciones.
func isMutable(c byte) bool {
	return classOf(c) != classSymbol
}

// advanceChar avanza un carácter k pasos dentro de su propia clase,
// estilo odómetro: al alcanzar el límite de clase ('9'→'0', 'Z'→'A',
// 'z'→'a') envuelve y retorna el acarreo hacia la izquierda.
func advanceChar(c byte, k int) (byte, int) {
	var base byte
	var size int

	switch classOf(c) {
	case classDigit:
		base, size = '0', 10
	case classUpper:
		base, size = 'A', 26
	case classLower:
		base, size = 'a', 26
	default:
		// Los símbolos no avanzan ni acarrean
		return c, 0
	}

	n := int(c-base) + k
	return base + byte(n%size), n / size
}
