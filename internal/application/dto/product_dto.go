package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. MinStock nil = 5.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Quantity int             `json:"quantity" validate:"min=0"`
	MinStock *int            `json:"minStock" validate:"omitempty,min=0"`
}

// UpdateProductRequest campos opcionales; nil = no cambia.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	Quantity *int             `json:"quantity" validate:"omitempty,min=0"`
	MinStock *int             `json:"minStock" validate:"omitempty,min=0"`
}

// ProductResponse producto para la interfaz. Cost se omite si el rol no puede verlo.
type ProductResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    decimal.Decimal  `json:"price"`
	Cost     *decimal.Decimal `json:"cost,omitempty"`
	Quantity int              `json:"quantity"`
	MinStock int              `json:"minStock"`
	LowStock bool             `json:"lowStock"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
