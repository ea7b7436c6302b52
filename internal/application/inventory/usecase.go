// Package inventory registra las bajas manuales de estoque (danos).
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/ids"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// DamageUseCase registra danos y descuenta el stock. Dos escrituras sin transacción.
type DamageUseCase struct {
	products repository.ProductRepository
	damages  repository.DamageRepository
	log      *logger.Logger
	now      func() time.Time
	newID    func() string
}

// Option ajusta dependencias no persistentes del caso de uso.
type Option func(*DamageUseCase)

// WithClock fija el reloj.
func WithClock(now func() time.Time) Option {
	return func(uc *DamageUseCase) { uc.now = now }
}

// NewDamageUseCase construye el caso de uso.
func NewDamageUseCase(products repository.ProductRepository, damages repository.DamageRepository, log *logger.Logger, opts ...Option) *DamageUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &DamageUseCase{
		products: products,
		damages:  damages,
		log:      log.Named("damages"),
		now:      time.Now,
		newID:    ids.New,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RecordDamage agrega el dano y resta la cantidad del producto sin piso.
func (uc *DamageUseCase) RecordDamage(ctx context.Context, damage entity.Damage) error {
	if err := uc.damages.Append(ctx, damage); err != nil {
		uc.log.Error().Err(err).Str("damage_id", damage.ID).Msg("recordDamage: falha ao gravar dano")
		return fmt.Errorf("registrar dano: %w", err)
	}
	uc.log.Debug().Str("damage_id", damage.ID).Msg("recordDamage: dano gravado")

	if err := uc.products.DecrementStock(ctx, map[string]int{damage.ProductID: damage.Quantity}); err != nil {
		uc.log.Error().Err(err).Str("damage_id", damage.ID).Msg("recordDamage: dano gravado, falha ao baixar estoque")
		return fmt.Errorf("baixar estoque: %w", err)
	}
	uc.log.Info().
		Str("damage_id", damage.ID).
		Str("product_id", damage.ProductID).
		Int("quantity", damage.Quantity).
		Msg("dano registrado")
	return nil
}

// Register valida el pedido contra el stock actual y registra el dano.
// El nombre del producto queda copiado en el registro.
func (uc *DamageUseCase) Register(ctx context.Context, in dto.DamageRequest) (*entity.Damage, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("register damage: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, in.ProductID)
	}
	if in.Quantity > product.Quantity {
		return nil, fmt.Errorf("%w: %s (disponível %d)", domain.ErrInsufficientStock, product.Name, product.Quantity)
	}
	damage := entity.Damage{
		ID:          uc.newID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		Reason:      reason,
		Date:        uc.now(),
	}
	if err := uc.RecordDamage(ctx, damage); err != nil {
		return nil, err
	}
	return &damage, nil
}

// List devuelve los danos, más recientes primero.
func (uc *DamageUseCase) List(ctx context.Context) ([]entity.Damage, error) {
	list, err := uc.damages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Damage, len(list))
	for i, d := range list {
		out[len(list)-1-i] = d
	}
	return out, nil
}
