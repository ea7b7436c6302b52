package entity

import "github.com/shopspring/decimal"

// DefaultMinStock umbral de estoque mínimo sugerido al crear un producto.
const DefaultMinStock = 5

// Product representa un producto del inventario de la loja.
// Quantity puede quedar negativa: el store no impone piso, la validación vive en el checkout.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"` // precio de venta
	Cost     decimal.Decimal `json:"cost"`  // costo unitario
	Quantity int             `json:"quantity"`
	MinStock int             `json:"minStock"`
}

// IsLowStock indica si la cantidad en mano alcanzó el mínimo configurado.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}
