// Package checkout reúne los cálculos puros de la venta: subtotales, total, lucro, troco y margen.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// Subtotal = Quantity * Price de la línea.
func Subtotal(item entity.SaleItem) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Totals suma subtotales (total) y (Price - Cost) * Quantity (lucro) de todas las líneas.
func Totals(items []entity.SaleItem) (total, profit decimal.Decimal) {
	total, profit = decimal.Zero, decimal.Zero
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		total = total.Add(it.Price.Mul(qty))
		profit = profit.Add(it.Price.Sub(it.Cost).Mul(qty))
	}
	return total, profit
}

// AmountReceived en efectivo es lo declarado por el operador; en TPA o transferencia es el total.
func AmountReceived(method entity.PaymentMethod, received, total decimal.Decimal) decimal.Decimal {
	if method == entity.PaymentCash {
		return received
	}
	return total
}

// Change troco: solo en efectivo, max(0, received - total).
func Change(method entity.PaymentMethod, received, total decimal.Decimal) decimal.Decimal {
	if method != entity.PaymentCash {
		return decimal.Zero
	}
	c := received.Sub(total)
	if c.IsNegative() {
		return decimal.Zero
	}
	return c
}

// Margin = profit / revenue; cero cuando no hubo faturação.
func Margin(revenue, profit decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue)
}
