package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntryType dirección del movimiento de caixa.
type CashEntryType string

// Tipos de movimiento de caixa.
const (
	CashIncome  CashEntryType = "INCOME"
	CashExpense CashEntryType = "EXPENSE"
)

// Valid indica si el tipo es conocido.
func (t CashEntryType) Valid() bool {
	return t == CashIncome || t == CashExpense
}

// CashEntry línea del fluxo de caixa. Cada venta genera una de tipo INCOME.
type CashEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        CashEntryType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
