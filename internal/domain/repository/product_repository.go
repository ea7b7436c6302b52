package repository

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Save reemplaza el producto con el mismo ID o lo agrega al final.
	Save(ctx context.Context, product entity.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock resta cantidades por productID sin piso; IDs desconocidos se ignoran.
	DecrementStock(ctx context.Context, quantities map[string]int) error
}
