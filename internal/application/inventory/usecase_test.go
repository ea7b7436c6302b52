package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/inventory"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository/mocks"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/memory"
)

func setup(t *testing.T, opts ...inventory.Option) (*inventory.DamageUseCase, *localdb.ProductRepo, *localdb.DamageRepo) {
	t.Helper()
	ctx := context.Background()
	db, err := localdb.Open(ctx, memory.New())
	require.NoError(t, err)
	products := localdb.NewProductRepository(db)
	require.NoError(t, products.Save(ctx, entity.Product{ID: "P1", Name: "Leite", Quantity: 4, MinStock: 2}))
	damages := localdb.NewDamageRepository(db)
	return inventory.NewDamageUseCase(products, damages, nil, opts...), products, damages
}

func TestRegister_DescuentaStockYCopiaNombre(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, products, damages := setup(t, inventory.WithClock(func() time.Time { return at }))

	d, err := uc.Register(ctx, dto.DamageRequest{ProductID: "P1", Quantity: 3, Reason: "  Validade vencida "})
	require.NoError(t, err)
	assert.Equal(t, "Leite", d.ProductName)
	assert.Equal(t, "Validade vencida", d.Reason)
	assert.True(t, d.Date.Equal(at))
	assert.Len(t, d.ID, 9)

	p, _ := products.GetByID(ctx, "P1")
	assert.Equal(t, 1, p.Quantity)

	// Renombrar el producto no cambia el registro
	p.Name = "Leite UHT"
	require.NoError(t, products.Save(ctx, *p))
	list, err := damages.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Leite", list[0].ProductName)
}

func TestRegister_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc, products, _ := setup(t)

	_, err := uc.Register(ctx, dto.DamageRequest{ProductID: "P1", Quantity: 5, Reason: "Quebra"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = uc.Register(ctx, dto.DamageRequest{ProductID: "P1", Quantity: 0, Reason: "Quebra"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.DamageRequest{ProductID: "P1", Quantity: 1, Reason: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.DamageRequest{ProductID: "X", Quantity: 1, Reason: "Quebra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, _ := products.GetByID(ctx, "P1")
	assert.Equal(t, 4, p.Quantity)
}

func TestRecordDamage_SinValidacionPermiteNegativo(t *testing.T) {
	ctx := context.Background()
	uc, products, _ := setup(t)

	require.NoError(t, uc.RecordDamage(ctx, entity.Damage{ID: "D1", ProductID: "P1", Quantity: 6, Reason: "Perda"}))
	p, _ := products.GetByID(ctx, "P1")
	assert.Equal(t, -2, p.Quantity)
}

func TestRecordDamage_FalloAlGuardarNoDescuenta(t *testing.T) {
	ctx := context.Background()
	products := new(mocks.MockProductRepository)
	damages := new(mocks.MockDamageRepository)
	boom := errors.New("falha")
	damages.On("Append", ctx, mock.Anything).Return(boom).Once()

	uc := inventory.NewDamageUseCase(products, damages, nil)
	err := uc.RecordDamage(ctx, entity.Damage{ID: "D1", ProductID: "P1", Quantity: 1})

	assert.ErrorIs(t, err, boom)
	products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
}

func TestList_MasRecientesPrimero(t *testing.T) {
	ctx := context.Background()
	uc, _, damages := setup(t)
	require.NoError(t, damages.Append(ctx, entity.Damage{ID: "D1"}))
	require.NoError(t, damages.Append(ctx, entity.Damage{ID: "D2"}))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "D2", list[0].ID)
}
