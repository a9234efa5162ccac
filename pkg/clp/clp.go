// Package clp formatea montos en pesos chilenos: símbolo $ antepuesto,
// separador de miles y sin decimales (el CLP no tiene subunidad).
package clp

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// Format devuelve el monto con formato es-CL, p. ej. 13500 -> "$13.500".
func Format(amount int64) string {
	return printer.Sprintf("$%v", number.Decimal(amount))
}
