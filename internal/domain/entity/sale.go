package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pago aceptada en el caixa.
type PaymentMethod string

// Formas de pago.
const (
	PaymentCash     PaymentMethod = "DINHEIRO"
	PaymentCard     PaymentMethod = "MULTICAIXA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

// PaymentMethods lista ordenada de formas de pago (orden de presentación en reportes).
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentTransfer}

// Valid indica si la forma de pago es conocida.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// SaleItem línea de venta con snapshot de nombre, precio y costo del producto al momento de vender.
type SaleItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale venta finalizada. Inmutable después del checkout.
type Sale struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	UserID         string          `json:"userId"`
	UserName       string          `json:"userName"`
	Items          []SaleItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Profit         decimal.Decimal `json:"profit"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Change         decimal.Decimal `json:"change"`
}
