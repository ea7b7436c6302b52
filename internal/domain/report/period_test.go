package report_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/report"
)

func TestParsePeriod(t *testing.T) {
	p, err := report.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, report.PeriodDay, p)

	p, err = report.ParsePeriod("WEEK")
	require.NoError(t, err)
	assert.Equal(t, report.PeriodWeek, p)

	_, err = report.ParsePeriod("year")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestWindow_Dia(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	w := report.NewWindow(report.PeriodDay, now, time.UTC)

	assert.True(t, w.Contains(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 5, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC)))
}

func TestWindow_DiaRespetaZona(t *testing.T) {
	wat := time.FixedZone("WAT", 3600)
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, wat)
	w := report.NewWindow(report.PeriodDay, now, wat)

	// 23:30 UTC del 14 = 00:30 del 15 en WAT
	assert.True(t, w.Contains(time.Date(2024, 5, 14, 23, 30, 0, 0, time.UTC)))
}

func TestWindow_SemanaSinLimiteSuperior(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	w := report.NewWindow(report.PeriodWeek, now, time.UTC)

	assert.True(t, w.Contains(now.Add(-7*24*time.Hour)))
	assert.False(t, w.Contains(now.Add(-7*24*time.Hour-time.Second)))
	assert.True(t, w.Contains(now.Add(48*time.Hour)))
}

// Cambio de horario (Lisboa, 27/10/2024): la semana cuenta días de calendario, no 168h.
func TestWindow_SemanaCruzaCambioDeHorario(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	now := time.Date(2024, 10, 30, 12, 0, 0, 0, lisbon)
	w := report.NewWindow(report.PeriodWeek, now, lisbon)

	// 23/10 12:00 local (UTC+1) es el inicio exacto de la ventana
	assert.True(t, w.Contains(time.Date(2024, 10, 23, 12, 0, 0, 0, lisbon)))
	// 23/10 12:30 local queda fuera con 168h, dentro con 7 días de calendario
	assert.True(t, w.Contains(time.Date(2024, 10, 23, 12, 30, 0, 0, lisbon)))
	assert.False(t, w.Contains(time.Date(2024, 10, 23, 11, 59, 0, 0, lisbon)))
}

func TestWindow_Mes(t *testing.T) {
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	w := report.NewWindow(report.PeriodMonth, now, time.UTC)

	assert.True(t, w.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC)))
}
