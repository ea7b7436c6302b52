package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/ids"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. El stock baja por vendas y danos, no por aquí.
type ProductUseCase struct {
	repo  repository.ProductRepository
	log   *logger.Logger
	newID func() string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Named("products"), newID: ids.New}
}

// Create crea un nuevo producto con id corto. MinStock omitido = 5.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() || in.Cost.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}
	product := entity.Product{
		ID:       uc.newID(),
		Name:     name,
		Price:    in.Price,
		Cost:     in.Cost,
		Quantity: in.Quantity,
		MinStock: minStock,
	}
	if err := uc.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("produto criado")
	return ToProductResponse(product, true), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string, caps access.Capabilities) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(*product, caps.Can(access.ViewCost)), nil
}

// Update actualiza los campos enviados. (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if err := uc.repo.Save(ctx, *product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	uc.log.Info().Str("product_id", product.ID).Msg("produto atualizado")
	return ToProductResponse(*product, true), nil
}

// List lista productos; search filtra por nombre (sin distinguir mayúsculas, substring).
func (uc *ProductUseCase) List(ctx context.Context, search string, caps access.Capabilities) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	showCost := caps.Can(access.ViewCost)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		items = append(items, *ToProductResponse(p, showCost))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// LowStock productos con quantity <= minStock, en el orden del inventario.
func (uc *ProductUseCase) LowStock(ctx context.Context, caps access.Capabilities) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return LowStockResponses(list, caps.Can(access.ViewCost)), nil
}

// Delete elimina un producto por ID. Vendas y danos que lo referencian no cambian.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	uc.log.Info().Str("product_id", id).Msg("produto removido")
	return nil
}

// LowStockResponses filtra productos en estoque baixo.
func LowStockResponses(list []entity.Product, showCost bool) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.IsLowStock() {
			out = append(out, *ToProductResponse(p, showCost))
		}
	}
	return out
}

// ToProductResponse proyecta el producto; showCost=false omite el costo.
func ToProductResponse(p entity.Product, showCost bool) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		MinStock: p.MinStock,
		LowStock: p.IsLowStock(),
	}
	if showCost {
		cost := p.Cost
		out.Cost = &cost
	}
	return out
}
