// internal/platform/validator/validator.go
package validator

import "strings"

// maxIdentifierLength límite de longitud defensivo para identificadores.
const maxIdentifierLength = 256

// IsIdentifier valida que una cadena sea un identificador sintácticamente
// correcto dentro del esquema: dígitos, letras ASCII de ambas cajas, guión
// y guión bajo. Sin espacios, sin unicode.
func IsIdentifier(s string) bool {
	if s == "" || len(s) > maxIdentifierLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierChar(s[i]) {
			return false
		}
	}
	return true
}

// isIdentifierChar verifica si el carácter pertenece al alfabeto del esquema.
func isIdentifierChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}

// NormalizeIdentifier limpia un identificador de entrada. Solo recorta
// espacios: el esquema distingue mayúsculas y minúsculas, así que nunca
// se cambia la caja.
func NormalizeIdentifier(s string) string {
	return strings.TrimSpace(s)
}

// HasMutablePosition indica si el identificador contiene al menos una
// posición incrementable (dígito o letra).
func HasMutablePosition(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return true
		}
	}
	return false
}
