package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// CashEntryRequest movimiento manual de caixa (entrada o saída).
type CashEntryRequest struct {
	Type        entity.CashEntryType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description" validate:"required"`
}
