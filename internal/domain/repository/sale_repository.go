package repository

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// SaleRepository colección append-only de ventas.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	Append(ctx context.Context, sale entity.Sale) error
}

// DamageRepository colección append-only de bajas por dano.
type DamageRepository interface {
	List(ctx context.Context) ([]entity.Damage, error)
	Append(ctx context.Context, damage entity.Damage) error
}

// CashEntryRepository colección append-only del fluxo de caixa.
type CashEntryRepository interface {
	List(ctx context.Context) ([]entity.CashEntry, error)
	Append(ctx context.Context, entry entity.CashEntry) error
}
