package dto

import "github.com/shopspring/decimal"

// ProfitRestricted texto mostrado en lugar del lucro cuando el rol no puede verlo.
const ProfitRestricted = "Restrito"

// DashboardSummaryDTO tarjetas y listas de la pantalla inicial.
type DashboardSummaryDTO struct {
	TotalSales    decimal.Decimal   `json:"totalSales"`
	SalesCount    int               `json:"salesCount"`
	Profit        *decimal.Decimal  `json:"profit,omitempty"`
	ProfitLabel   string            `json:"profitLabel"`
	ProductCount  int               `json:"productCount"`
	LowStockCount int               `json:"lowStockCount"`
	LowStock      []ProductResponse `json:"lowStock"`
	RecentSales   []SaleResponse    `json:"recentSales"`
}
