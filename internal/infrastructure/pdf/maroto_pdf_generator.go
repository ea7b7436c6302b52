// Package pdf genera el relatorio financiero del caixa en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Luviel Fluxo + período   │  Gerado em               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Faturação | Lucro | Margem | Saldo de caixa          │
//	│  FORMAS DE PAGAMENTO: Método | Vendas | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDAS: Data | Venda | Operador | Pagamento | Total          │
//	│  FLUXO DE CAIXA: Data | Tipo | Descrição | Valor              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/luviel-fluxo/internal/application/analytics"
	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/pkg/format"
)

var _ analytics.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	loc *time.Location
}

// NewMarotoPDFGenerator construye el generador; loc es la zona de las fechas impresas.
func NewMarotoPDFGenerator(loc *time.Location) *MarotoPDFGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &MarotoPDFGenerator{loc: loc}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório financeiro", true).
		WithAuthor("Luviel Fluxo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(paymentRows(report)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.salesRows(report.Sales)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(g.cashRows(report.CashEntries)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(r *dto.ReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Luviel Fluxo", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Relatório: "+r.Label, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Gerado em", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(format.DateTime(r.GeneratedAt, g.loc), props.Text{Size: 9, Align: align.Right, Top: 7}),
		),
	)
}

func summaryRows(r *dto.ReportDTO) []core.Row {
	card := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Color: c, Top: 5}),
		)
	}
	net := colorPrimary
	if r.NetCash.IsNegative() {
		net = colorRed
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(sectionTitle("RESUMO"))),
		row.New(12).Add(
			card("Faturação ("+strconv.Itoa(r.SalesCount)+" vendas)", format.Currency(r.Revenue), colorPrimary),
			card("Lucro", format.Currency(r.Profit), colorPrimary),
			card("Margem", format.Percent(r.Margin), colorPrimary),
			card("Saldo de caixa", format.Currency(r.NetCash), net),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Entradas: "+format.Currency(r.Income), props.Text{Size: 8, Color: colorGray})),
			col.New(6).Add(text.New("Saídas: "+format.Currency(r.Expense), props.Text{Size: 8, Color: colorGray})),
		),
	}
}

func paymentRows(r *dto.ReportDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(sectionTitle("FORMAS DE PAGAMENTO"))),
		tableHeader([]string{"Método", "Vendas", "Total"}, []int{6, 2, 4}),
	}
	for _, p := range r.ByPayment {
		rows = append(rows, row.New(6).Add(
			cell(string(p.Method), 6, align.Left),
			cell(strconv.Itoa(p.Count), 2, align.Center),
			cell(format.Currency(p.Total), 4, align.Right),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) salesRows(sales []entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(sectionTitle("VENDAS"))),
		tableHeader([]string{"Data", "Venda", "Operador", "Pagamento", "Total"}, []int{3, 2, 3, 2, 2}),
	}
	if len(sales) == 0 {
		return append(rows, emptyRow("Nenhuma venda no período."))
	}
	for _, s := range sales {
		rows = append(rows, row.New(6).Add(
			cell(format.DateTime(s.Date, g.loc), 3, align.Left),
			cell(s.ID, 2, align.Left),
			cell(s.UserName, 3, align.Left),
			cell(string(s.PaymentMethod), 2, align.Left),
			cell(format.Currency(s.Total), 2, align.Right),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) cashRows(entries []entity.CashEntry) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(sectionTitle("FLUXO DE CAIXA"))),
		tableHeader([]string{"Data", "Tipo", "Descrição", "Valor"}, []int{3, 2, 4, 3}),
	}
	if len(entries) == 0 {
		return append(rows, emptyRow("Nenhum movimento no período."))
	}
	for _, e := range entries {
		kind := "Entrada"
		if e.Type == entity.CashExpense {
			kind = "Saída"
		}
		rows = append(rows, row.New(6).Add(
			cell(format.DateTime(e.Date, g.loc), 3, align.Left),
			cell(kind, 2, align.Left),
			cell(e.Description, 4, align.Left),
			cell(format.Currency(e.Amount), 3, align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1})))
}
