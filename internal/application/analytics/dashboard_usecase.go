// Package analytics contiene el resumen del dashboard y los relatorios financieros.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/usecase"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

const dashboardRecentSales = 5 // vendas recientes en el widget del dashboard

// DashboardUseCase arma las tarjetas de la pantalla inicial sobre todo el histórico.
type DashboardUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, sales repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, sales: sales}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos lecturas en paralelo (productos y vendas). El lucro solo se incluye con ViewProfit;
// sin él, ProfitLabel = "Restrito".
func (uc *DashboardUseCase) GetSummary(ctx context.Context, caps access.Capabilities) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []entity.Product
		err  error
	}
	type salesResult struct {
		list []entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.sales.List(ctx)
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: produtos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: vendas: %w", sales.err)
	}

	// ── Totales ────────────────────────────────────────────────────────────────
	total, profit := decimal.Zero, decimal.Zero
	for _, s := range sales.list {
		total = total.Add(s.Total)
		profit = profit.Add(s.Profit)
	}

	showProfit := caps.Can(access.ViewProfit)
	lowStock := usecase.LowStockResponses(products.list, caps.Can(access.ViewCost))

	// ── Últimas vendas, más recientes primero ────────────────────────────────
	recent := make([]dto.SaleResponse, 0, dashboardRecentSales)
	for i := len(sales.list) - 1; i >= 0 && len(recent) < dashboardRecentSales; i-- {
		recent = append(recent, dto.ToSaleResponse(sales.list[i], showProfit))
	}

	out := &dto.DashboardSummaryDTO{
		TotalSales:    total,
		SalesCount:    len(sales.list),
		ProductCount:  len(products.list),
		LowStockCount: len(lowStock),
		LowStock:      lowStock,
		RecentSales:   recent,
	}
	if showProfit {
		out.Profit = &profit
		out.ProfitLabel = profit.StringFixed(2)
	} else {
		out.ProfitLabel = dto.ProfitRestricted
	}
	return out, nil
}
