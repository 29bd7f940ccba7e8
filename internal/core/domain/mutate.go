// internal/core/domain/mutate.go
package domain

// Mutate genera el candidato del paso `step` (1-indexado) aplicando la
// estrategia sobre el identificador base. Es una función pura: el mismo
// (base, strategy, step) produce siempre el mismo resultado.
//
// El segundo valor de retorno indica si el paso generó un candidato. Un
// false significa que el espacio de mutación está agotado para este paso y
// todos los posteriores (la generación se detiene en silencio, nunca con
// error).
func Mutate(base Identifier, strategy Strategy, step int) (Identifier, bool) {
	if base.IsEmpty() || step <= 0 {
		return "", false
	}

	switch strategy {
	case StrategyLastChar:
		return lastCharStep(string(base), step)
	case StrategyLastDigit:
		return lastDigitStep(string(base), step)
	case StrategyLastLetter:
		return lastLetterStep(string(base), step)
	case StrategyAllPositions:
		return allPositionsStep(string(base), step)
	default:
		return "", false
	}
}

// lastCharStep avanza la posición final en `step` unidades tratando el
// identificador completo como un contador: cada posición envuelve dentro de
// su propia clase y el acarreo aterriza en el carácter inmediatamente a la
// izquierda, sea cual sea su clase. Los símbolos no participan: el acarreo
// los salta. Un símbolo en la posición final no genera ningún paso.
func lastCharStep(s string, step int) (Identifier, bool) {
	b := []byte(s)
	last := len(b) - 1
	if !isMutable(b[last]) {
		return "", false
	}

	carry := step
	for i := last; i >= 0 && carry > 0; i-- {
		if !isMutable(b[i]) {
			continue
		}
		b[i], carry = advanceChar(b[i], carry)
	}

	// Acarreo más allá de la posición más a la izquierda: el contador no
	// puede representar el valor, la generación se agota aquí.
	if carry > 0 {
		return "", false
	}
	return Identifier(b), true
}

// lastDigitStep localiza el dígito más a la derecha y lo avanza `step`
// unidades. El acarreo queda confinado a los dígitos situados más a la
// izquierda (letras y símbolos se saltan, nunca se tocan). El acarreo que
// sobrevive al dígito más a la izquierda se descarta: la cadena de dígitos
// envuelve, ABC9 + 1 = ABC0.
func lastDigitStep(s string, step int) (Identifier, bool) {
	b := []byte(s)
	pos := -1
	for i := len(b) - 1; i >= 0; i-- {
		if classOf(b[i]) == classDigit {
			pos = i
			break
		}
	}
	if pos < 0 {
		return "", false
	}

	carry := step
	for i := pos; i >= 0 && carry > 0; i-- {
		if classOf(b[i]) != classDigit {
			continue
		}
		b[i], carry = advanceChar(b[i], carry)
	}
	return Identifier(b), true
}

// lastLetterStep es el espejo de lastDigitStep para letras: cada letra
// avanza dentro de su propia caja y el acarreo salta a la siguiente letra
// hacia la izquierda, sin cruce dígito/letra.
func lastLetterStep(s string, step int) (Identifier, bool) {
	b := []byte(s)
	pos := -1
	for i := len(b) - 1; i >= 0; i-- {
		if cl := classOf(b[i]); cl == classUpper || cl == classLower {
			pos = i
			break
		}
	}
	if pos < 0 {
		return "", false
	}

	carry := step
	for i := pos; i >= 0 && carry > 0; i-- {
		if cl := classOf(b[i]); cl != classUpper && cl != classLower {
			continue
		}
		b[i], carry = advanceChar(b[i], carry)
	}
	return Identifier(b), true
}

// allPositionsStep avanza una única posición en 1 dentro de su clase, sin
// acarreo: el paso k selecciona la k-ésima posición mutable de izquierda a
// derecha. Cuando los pasos superan el número de posiciones mutables la
// generación se agota.
func allPositionsStep(s string, step int) (Identifier, bool) {
	b := []byte(s)
	n := 0
	for i := 0; i < len(b); i++ {
		if !isMutable(b[i]) {
			continue
		}
		n++
		if n == step {
			b[i], _ = advanceChar(b[i], 1)
			return Identifier(b), true
		}
	}
	return "", false
}
