package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// CheckoutItemRequest línea del carrinho.
type CheckoutItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CheckoutRequest finalización de venta. AmountReceived solo se usa en DINHEIRO.
type CheckoutRequest struct {
	Items          []CheckoutItemRequest `json:"items" validate:"dive"`
	PaymentMethod  entity.PaymentMethod  `json:"paymentMethod" validate:"required,oneof=DINHEIRO MULTICAIXA TRANSFERENCIA"`
	AmountReceived decimal.Decimal       `json:"amountReceived"`
}

// SaleItemResponse línea de venta; Cost se omite sin permiso de lucro.
type SaleItemResponse struct {
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	Price       decimal.Decimal  `json:"price"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Quantity    int              `json:"quantity"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
}

// SaleResponse venta para la interfaz; Profit se omite sin permiso de lucro.
type SaleResponse struct {
	ID             string               `json:"id"`
	Date           time.Time            `json:"date"`
	UserID         string               `json:"userId"`
	UserName       string               `json:"userName"`
	Items          []SaleItemResponse   `json:"items"`
	Total          decimal.Decimal      `json:"total"`
	Profit         *decimal.Decimal     `json:"profit,omitempty"`
	PaymentMethod  entity.PaymentMethod `json:"paymentMethod"`
	AmountReceived decimal.Decimal      `json:"amountReceived"`
	Change         decimal.Decimal      `json:"change"`
}

// SaleListResponse página de vendas (más recientes primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToSaleResponse convierte la entidad; showProfit controla lucro y costo.
func ToSaleResponse(s entity.Sale, showProfit bool) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		line := SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		}
		if showProfit {
			cost := it.Cost
			line.Cost = &cost
		}
		items = append(items, line)
	}
	out := SaleResponse{
		ID:             s.ID,
		Date:           s.Date,
		UserID:         s.UserID,
		UserName:       s.UserName,
		Items:          items,
		Total:          s.Total,
		PaymentMethod:  s.PaymentMethod,
		AmountReceived: s.AmountReceived,
		Change:         s.Change,
	}
	if showProfit {
		profit := s.Profit
		out.Profit = &profit
	}
	return out
}
