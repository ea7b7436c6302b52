package localdb

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var (
	_ repository.SaleRepository      = (*SaleRepo)(nil)
	_ repository.DamageRepository    = (*DamageRepo)(nil)
	_ repository.CashEntryRepository = (*CashEntryRepo)(nil)
)

// SaleRepo colección luviel_sales.
type SaleRepo struct{ db *DB }

// NewSaleRepository construye el repositorio de ventas.
func NewSaleRepository(db *DB) *SaleRepo { return &SaleRepo{db: db} }

func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	return getData[entity.Sale](ctx, r.db, KeySales)
}

func (r *SaleRepo) Append(ctx context.Context, sale entity.Sale) error {
	return appendData(ctx, r.db, KeySales, sale)
}

// DamageRepo colección luviel_damages.
type DamageRepo struct{ db *DB }

// NewDamageRepository construye el repositorio de danos.
func NewDamageRepository(db *DB) *DamageRepo { return &DamageRepo{db: db} }

func (r *DamageRepo) List(ctx context.Context) ([]entity.Damage, error) {
	return getData[entity.Damage](ctx, r.db, KeyDamages)
}

func (r *DamageRepo) Append(ctx context.Context, damage entity.Damage) error {
	return appendData(ctx, r.db, KeyDamages, damage)
}

// CashEntryRepo colección luviel_cashflow.
type CashEntryRepo struct{ db *DB }

// NewCashEntryRepository construye el repositorio del fluxo de caixa.
func NewCashEntryRepository(db *DB) *CashEntryRepo { return &CashEntryRepo{db: db} }

func (r *CashEntryRepo) List(ctx context.Context) ([]entity.CashEntry, error) {
	return getData[entity.CashEntry](ctx, r.db, KeyCashFlow)
}

func (r *CashEntryRepo) Append(ctx context.Context, entry entity.CashEntry) error {
	return appendData(ctx, r.db, KeyCashFlow, entry)
}
