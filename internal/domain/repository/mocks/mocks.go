// Package mocks implementa los puertos de repositorio con testify/mock para tests de casos de uso.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var (
	_ repository.UserRepository      = (*MockUserRepository)(nil)
	_ repository.ProductRepository   = (*MockProductRepository)(nil)
	_ repository.SaleRepository      = (*MockSaleRepository)(nil)
	_ repository.DamageRepository    = (*MockDamageRepository)(nil)
	_ repository.CashEntryRepository = (*MockCashEntryRepository)(nil)
)

// ── Users ─────────────────────────────────────────────────────────────────────

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, in entity.UserUpdate) (bool, error) {
	args := m.Called(ctx, in)
	return args.Bool(0), args.Error(1)
}

// ── Products ──────────────────────────────────────────────────────────────────

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, quantities map[string]int) error {
	return m.Called(ctx, quantities).Error(0)
}

// ── Ledgers ───────────────────────────────────────────────────────────────────

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]entity.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSaleRepository) Append(ctx context.Context, sale entity.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

type MockDamageRepository struct {
	mock.Mock
}

func (m *MockDamageRepository) List(ctx context.Context) ([]entity.Damage, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]entity.Damage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDamageRepository) Append(ctx context.Context, damage entity.Damage) error {
	return m.Called(ctx, damage).Error(0)
}

type MockCashEntryRepository struct {
	mock.Mock
}

func (m *MockCashEntryRepository) List(ctx context.Context) ([]entity.CashEntry, error) {
	args := m.Called(ctx)
	if e := args.Get(0); e != nil {
		return e.([]entity.CashEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCashEntryRepository) Append(ctx context.Context, entry entity.CashEntry) error {
	return m.Called(ctx, entry).Error(0)
}
