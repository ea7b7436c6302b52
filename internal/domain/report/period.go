// Package report contiene el filtro de período de los relatorios financieros.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/luviel-fluxo/internal/domain"
)

// Period ventana temporal de un relatorio.
type Period string

// Períodos soportados.
const (
	PeriodDay   Period = "day"   // mismo día de calendario
	PeriodWeek  Period = "week"  // últimos 7 días corridos
	PeriodMonth Period = "month" // mismo mes y año
)

// ParsePeriod interpreta el parámetro de consulta. Vacío = day.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "", PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("%w: período %q", domain.ErrInvalidInput, s)
}

// Label nombre mostrado en exportaciones.
func (p Period) Label() string {
	switch p {
	case PeriodDay:
		return "Hoje"
	case PeriodWeek:
		return "Últimos 7 dias"
	case PeriodMonth:
		return "Este mês"
	}
	return string(p)
}

// Window filtro evaluado contra un instante de referencia y una zona horaria.
type Window struct {
	Period Period
	Now    time.Time
	Loc    *time.Location
}

// NewWindow fija la referencia. loc nil = zona de now.
func NewWindow(p Period, now time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = now.Location()
	}
	return Window{Period: p, Now: now.In(loc), Loc: loc}
}

// Contains indica si t entra en la ventana.
// La semana retrocede 7 días de calendario en la zona local (no 168h) y no tiene límite superior:
// registros con fecha futura también entran.
func (w Window) Contains(t time.Time) bool {
	local := t.In(w.Loc)
	switch w.Period {
	case PeriodDay:
		y1, m1, d1 := local.Date()
		y2, m2, d2 := w.Now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeek:
		return !local.Before(w.Now.AddDate(0, 0, -7))
	case PeriodMonth:
		return local.Year() == w.Now.Year() && local.Month() == w.Now.Month()
	}
	return false
}
