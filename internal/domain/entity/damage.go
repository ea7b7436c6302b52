package entity

import "time"

// Damage baja manual de estoque (quebra, validade vencida, perda) sin venta asociada.
// ProductName es un snapshot: no cambia si el producto se renombra después.
type Damage struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
}
