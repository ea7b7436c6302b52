// Package format concentra el formato de moneda (Kwanza) y fechas mostrado en reportes y exportaciones.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol símbolo local del Kwanza angoleño.
const CurrencySymbol = "Kz"

var angola = language.MustParse("pt-AO")

// Currency formatea un valor con separadores pt-AO, dos decimales y el sufijo Kz.
func Currency(v decimal.Decimal) string {
	p := message.NewPrinter(angola)
	return p.Sprint(number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2))) + " " + CurrencySymbol
}

// Date formatea una fecha como dd/mm/aaaa en la zona indicada (nil = local).
func Date(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02/01/2006")
}

// DateTime formatea fecha y hora (dd/mm/aaaa HH:MM).
func DateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02/01/2006 15:04")
}

// Percent formatea una fracción (0.2 -> "20,0%").
func Percent(fraction decimal.Decimal) string {
	p := message.NewPrinter(angola)
	return p.Sprint(number.Decimal(fraction.Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64(), number.Scale(1))) + "%"
}
