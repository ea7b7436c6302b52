package localdb

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección luviel_products.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List devuelve todos los productos en el orden guardado.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	return getData[entity.Product](ctx, r.db, KeyProducts)
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Save reemplaza el producto con el mismo ID o lo agrega al final.
func (r *ProductRepo) Save(ctx context.Context, product entity.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	return setData(ctx, r.db, KeyProducts, products)
}

// Delete filtra el producto por id. Ventas y danos históricos no se tocan.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return setData(ctx, r.db, KeyProducts, kept)
}

// DecrementStock resta cada cantidad al producto correspondiente, sin piso, en una sola escritura.
func (r *ProductRepo) DecrementStock(ctx context.Context, quantities map[string]int) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if qty, ok := quantities[products[i].ID]; ok {
			products[i].Quantity -= qty
		}
	}
	return setData(ctx, r.db, KeyProducts, products)
}
