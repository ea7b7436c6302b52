package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain/checkout"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/report"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

// ReportUseCase calcula relatorios por período sobre vendas y fluxo de caixa. Nada se persiste.
type ReportUseCase struct {
	sales repository.SaleRepository
	cash  repository.CashEntryRepository
	pdf   ReportPDFGenerator
	xml   ReportXMLExporter
	loc   *time.Location
	now   func() time.Time
}

// ReportOption ajusta dependencias no persistentes del ReportUseCase.
type ReportOption func(*ReportUseCase)

// WithClock fija el reloj que ancla los períodos.
func WithClock(now func() time.Time) ReportOption {
	return func(uc *ReportUseCase) { uc.now = now }
}

// NewReportUseCase construye el caso de uso. loc define el día/mes de calendario (nil = local).
func NewReportUseCase(
	sales repository.SaleRepository,
	cash repository.CashEntryRepository,
	pdf ReportPDFGenerator,
	xml ReportXMLExporter,
	loc *time.Location,
	opts ...ReportOption,
) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	uc := &ReportUseCase{sales: sales, cash: cash, pdf: pdf, xml: xml, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Build filtra vendas y movimientos de caixa por período y calcula:
// faturação, lucro, margem, entradas, saídas, saldo y totales por forma de pago.
func (uc *ReportUseCase) Build(ctx context.Context, period string) (*dto.ReportDTO, error) {
	p, err := report.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: vendas: %w", err)
	}
	entries, err := uc.cash.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: caixa: %w", err)
	}

	now := uc.now()
	w := report.NewWindow(p, now, uc.loc)

	out := &dto.ReportDTO{
		Period:      string(p),
		Label:       p.Label(),
		GeneratedAt: now,
		Revenue:     decimal.Zero,
		Profit:      decimal.Zero,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
		Sales:       []entity.Sale{},
		CashEntries: []entity.CashEntry{},
	}

	byMethod := make(map[entity.PaymentMethod]*dto.PaymentSummary, len(entity.PaymentMethods))
	for _, m := range entity.PaymentMethods {
		byMethod[m] = &dto.PaymentSummary{Method: m, Total: decimal.Zero}
	}

	for _, s := range sales {
		if !w.Contains(s.Date) {
			continue
		}
		out.Sales = append(out.Sales, s)
		out.Revenue = out.Revenue.Add(s.Total)
		out.Profit = out.Profit.Add(s.Profit)
		summary, ok := byMethod[s.PaymentMethod]
		if !ok {
			// forma de pago desconocida en datos viejos: se agrega al final
			summary = &dto.PaymentSummary{Method: s.PaymentMethod, Total: decimal.Zero}
			byMethod[s.PaymentMethod] = summary
		}
		summary.Count++
		summary.Total = summary.Total.Add(s.Total)
	}
	out.SalesCount = len(out.Sales)
	out.Margin = checkout.Margin(out.Revenue, out.Profit)

	for _, e := range entries {
		if !w.Contains(e.Date) {
			continue
		}
		out.CashEntries = append(out.CashEntries, e)
		switch e.Type {
		case entity.CashIncome:
			out.Income = out.Income.Add(e.Amount)
		case entity.CashExpense:
			out.Expense = out.Expense.Add(e.Amount)
		}
	}
	out.NetCash = out.Income.Sub(out.Expense)

	out.ByPayment = make([]dto.PaymentSummary, 0, len(byMethod))
	for _, m := range entity.PaymentMethods {
		out.ByPayment = append(out.ByPayment, *byMethod[m])
	}
	for m, summary := range byMethod {
		if !m.Valid() {
			out.ByPayment = append(out.ByPayment, *summary)
		}
	}
	return out, nil
}

// ExportPDF construye el relatorio y lo renderiza en PDF. Devuelve bytes y nombre de archivo.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, period string) ([]byte, string, error) {
	r, err := uc.Build(ctx, period)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.GenerateReportPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("report: pdf: %w", err)
	}
	return doc, filename(r, "pdf"), nil
}

// ExportXML construye el relatorio y lo serializa a XML canónico.
func (uc *ReportUseCase) ExportXML(ctx context.Context, period string) ([]byte, string, error) {
	r, err := uc.Build(ctx, period)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.xml.ExportReportXML(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("report: xml: %w", err)
	}
	return doc, filename(r, "xml"), nil
}

func filename(r *dto.ReportDTO, ext string) string {
	return fmt.Sprintf("relatorio-%s-%s.%s", r.Period, r.GeneratedAt.Format("20060102"), ext)
}
