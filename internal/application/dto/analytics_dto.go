package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// PaymentSummary total y cantidad de vendas por forma de pago.
type PaymentSummary struct {
	Method entity.PaymentMethod `json:"method"`
	Count  int                  `json:"count"`
	Total  decimal.Decimal      `json:"total"`
}

// ReportDTO relatorio financiero de un período.
type ReportDTO struct {
	Period      string             `json:"period"`
	Label       string             `json:"label"`
	GeneratedAt time.Time          `json:"generatedAt"`
	SalesCount  int                `json:"salesCount"`
	Revenue     decimal.Decimal    `json:"revenue"`
	Profit      decimal.Decimal    `json:"profit"`
	Margin      decimal.Decimal    `json:"margin"` // fracción: 0.25 = 25%
	Income      decimal.Decimal    `json:"income"`
	Expense     decimal.Decimal    `json:"expense"`
	NetCash     decimal.Decimal    `json:"netCash"`
	ByPayment   []PaymentSummary   `json:"byPayment"`
	Sales       []entity.Sale      `json:"sales"`
	CashEntries []entity.CashEntry `json:"cashEntries"`
}
