package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/sales"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository/mocks"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc       *sales.SalesUseCase
	products *localdb.ProductRepo
	sales    *localdb.SaleRepo
	cash     *localdb.CashEntryRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db, err := localdb.Open(ctx, memory.New())
	require.NoError(t, err)

	products := localdb.NewProductRepository(db)
	require.NoError(t, products.Save(ctx, entity.Product{
		ID: "P1", Name: "Arroz 1kg", Price: decimal.NewFromInt(500), Cost: decimal.NewFromInt(300), Quantity: 10, MinStock: 5,
	}))
	require.NoError(t, products.Save(ctx, entity.Product{
		ID: "P2", Name: "Óleo", Price: decimal.NewFromInt(1200), Cost: decimal.NewFromInt(1000), Quantity: 2, MinStock: 1,
	}))

	f := fixture{
		products: products,
		sales:    localdb.NewSaleRepository(db),
		cash:     localdb.NewCashEntryRepository(db),
	}
	seq := 0
	f.uc = sales.NewSalesUseCase(
		localdb.NewUserRepository(db), products, f.sales, f.cash, nil,
		sales.WithClock(func() time.Time { return fixedNow }),
		sales.WithIDs(
			func() string { seq++; return "L" + string(rune('0'+seq)) },
			func() string { return "S-ABCDE1234" },
		),
	)
	return f
}

func TestCheckout_DinheiroCalculaTrocoYDescuentaStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sale, err := f.uc.Checkout(ctx, "2", dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: "P1", Quantity: 2},
			{ProductID: "P2", Quantity: 1},
			{ProductID: "P1", Quantity: 1}, // se suma a la primera línea
		},
		PaymentMethod:  entity.PaymentCash,
		AmountReceived: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	assert.Equal(t, "S-ABCDE1234", sale.ID)
	assert.Equal(t, "2", sale.UserID)
	assert.Equal(t, "Vendedor Padrão", sale.UserName)
	assert.True(t, sale.Date.Equal(fixedNow))
	require.Len(t, sale.Items, 2)
	assert.Equal(t, 3, sale.Items[0].Quantity)
	assert.True(t, sale.Items[0].Subtotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(2700)), sale.Total.String())
	// (500-300)*3 + (1200-1000)*1
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(800)), sale.Profit.String())
	assert.True(t, sale.AmountReceived.Equal(decimal.NewFromInt(3000)))
	assert.True(t, sale.Change.Equal(decimal.NewFromInt(300)))

	p1, _ := f.products.GetByID(ctx, "P1")
	p2, _ := f.products.GetByID(ctx, "P2")
	assert.Equal(t, 7, p1.Quantity)
	assert.Equal(t, 1, p2.Quantity)

	entries, err := f.cash.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.CashIncome, entries[0].Type)
	assert.Equal(t, "Venda #1234", entries[0].Description)
	assert.True(t, entries[0].Amount.Equal(sale.Total))
	assert.Equal(t, "cf-1715769000000", entries[0].ID)
}

// Recebido igual ao total: a venda passa com troco zero.
func TestCheckout_DinheiroRecibidoExactoSinTroco(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.products.Save(ctx, entity.Product{
		ID: "P3", Name: "Arroz 5kg", Price: decimal.NewFromInt(3500), Cost: decimal.NewFromInt(2800), Quantity: 50, MinStock: 5,
	}))

	sale, err := f.uc.Checkout(ctx, "2", dto.CheckoutRequest{
		Items:          []dto.CheckoutItemRequest{{ProductID: "P3", Quantity: 3}},
		PaymentMethod:  entity.PaymentCash,
		AmountReceived: decimal.NewFromInt(10500),
	})
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(decimal.NewFromInt(10500)), sale.Total.String())
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(2100)), sale.Profit.String())
	assert.True(t, sale.AmountReceived.Equal(decimal.NewFromInt(10500)))
	assert.True(t, sale.Change.IsZero(), sale.Change.String())

	p3, err := f.products.GetByID(ctx, "P3")
	require.NoError(t, err)
	assert.Equal(t, 47, p3.Quantity)
}

func TestCheckout_MulticaixaIgnoraValorRecibido(t *testing.T) {
	f := newFixture(t)

	sale, err := f.uc.Checkout(context.Background(), "1", dto.CheckoutRequest{
		Items:          []dto.CheckoutItemRequest{{ProductID: "P1", Quantity: 1}},
		PaymentMethod:  entity.PaymentCard,
		AmountReceived: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, sale.AmountReceived.Equal(decimal.NewFromInt(500)))
	assert.True(t, sale.Change.IsZero())
}

func TestCheckout_Validaciones(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CheckoutRequest
		want error
	}{
		{"carrinho vacío", dto.CheckoutRequest{PaymentMethod: entity.PaymentCash}, domain.ErrEmptyCart},
		{"stock insuficiente", dto.CheckoutRequest{
			Items:         []dto.CheckoutItemRequest{{ProductID: "P2", Quantity: 3}},
			PaymentMethod: entity.PaymentCard,
		}, domain.ErrInsufficientStock},
		{"líneas repetidas superan el stock", dto.CheckoutRequest{
			Items:         []dto.CheckoutItemRequest{{ProductID: "P2", Quantity: 2}, {ProductID: "P2", Quantity: 1}},
			PaymentMethod: entity.PaymentCard,
		}, domain.ErrInsufficientStock},
		{"valor recibido menor al total", dto.CheckoutRequest{
			Items:          []dto.CheckoutItemRequest{{ProductID: "P1", Quantity: 2}},
			PaymentMethod:  entity.PaymentCash,
			AmountReceived: decimal.NewFromInt(999),
		}, domain.ErrReceivedBelowTotal},
		{"producto inexistente", dto.CheckoutRequest{
			Items:         []dto.CheckoutItemRequest{{ProductID: "NOPE", Quantity: 1}},
			PaymentMethod: entity.PaymentTransfer,
		}, domain.ErrNotFound},
		{"cantidad cero", dto.CheckoutRequest{
			Items:         []dto.CheckoutItemRequest{{ProductID: "P1", Quantity: 0}},
			PaymentMethod: entity.PaymentTransfer,
		}, domain.ErrInvalidInput},
		{"forma de pago desconocida", dto.CheckoutRequest{
			Items:         []dto.CheckoutItemRequest{{ProductID: "P1", Quantity: 1}},
			PaymentMethod: "CHEQUE",
		}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Checkout(ctx, "1", tc.req)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			// Nada se escribe cuando la validación falla
			list, _ := f.sales.List(ctx)
			assert.Empty(t, list)
			p1, _ := f.products.GetByID(ctx, "P1")
			assert.Equal(t, 10, p1.Quantity)
		})
	}
}

func TestCheckout_VendedorInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Checkout(context.Background(), "99", dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: "P1", Quantity: 1}},
		PaymentMethod: entity.PaymentCard,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRecordSale_StockSinPiso(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// RecordSale no valida: el stock puede quedar negativo
	err := f.uc.RecordSale(ctx, entity.Sale{
		ID:    "S-XXXXX0001",
		Date:  fixedNow,
		Items: []entity.SaleItem{{ProductID: "P2", Quantity: 5}, {ProductID: "GHOST", Quantity: 1}},
		Total: decimal.NewFromInt(6000),
	})
	require.NoError(t, err)

	p2, _ := f.products.GetByID(ctx, "P2")
	assert.Equal(t, -3, p2.Quantity)
}

func TestRecordSale_FalloEnCaixaDejaVentaYStock(t *testing.T) {
	ctx := context.Background()
	users := new(mocks.MockUserRepository)
	products := new(mocks.MockProductRepository)
	salesRepo := new(mocks.MockSaleRepository)
	cash := new(mocks.MockCashEntryRepository)

	sale := entity.Sale{
		ID:    "S-AAAAA9876",
		Date:  fixedNow,
		Items: []entity.SaleItem{{ProductID: "P1", Quantity: 2}},
		Total: decimal.NewFromInt(1000),
	}
	boom := errors.New("disco cheio")
	salesRepo.On("Append", ctx, sale).Return(nil).Once()
	products.On("DecrementStock", ctx, map[string]int{"P1": 2}).Return(nil).Once()
	cash.On("Append", ctx, mock.MatchedBy(func(e entity.CashEntry) bool {
		return e.Description == "Venda #9876" && e.Amount.Equal(sale.Total)
	})).Return(boom).Once()

	uc := sales.NewSalesUseCase(users, products, salesRepo, cash, nil, sales.WithClock(func() time.Time { return fixedNow }))
	err := uc.RecordSale(ctx, sale)

	assert.ErrorIs(t, err, boom)
	salesRepo.AssertExpectations(t)
	products.AssertExpectations(t)
	cash.AssertExpectations(t)
}

func TestRecordSale_FalloEnVentaNoTocaStock(t *testing.T) {
	ctx := context.Background()
	products := new(mocks.MockProductRepository)
	salesRepo := new(mocks.MockSaleRepository)
	cash := new(mocks.MockCashEntryRepository)

	boom := errors.New("falha")
	salesRepo.On("Append", ctx, mock.Anything).Return(boom).Once()

	uc := sales.NewSalesUseCase(new(mocks.MockUserRepository), products, salesRepo, cash, nil)
	err := uc.RecordSale(ctx, entity.Sale{ID: "S-1"})

	assert.ErrorIs(t, err, boom)
	products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
	cash.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestListYRecent_MasRecientesPrimero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i, id := range []string{"S-1", "S-2", "S-3"} {
		require.NoError(t, f.sales.Append(ctx, entity.Sale{
			ID: id, Date: fixedNow.Add(time.Duration(i) * time.Minute),
			Total: decimal.NewFromInt(100), Profit: decimal.NewFromInt(40),
		}))
	}

	recent, err := f.uc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "S-3", recent[0].ID)
	assert.Equal(t, "S-2", recent[1].ID)

	page, err := f.uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 1}, access.For(entity.RoleVendor))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "S-2", page.Items[0].ID)
	assert.Equal(t, 3, page.Page.Total)
	assert.Nil(t, page.Items[0].Profit, "vendedor no ve lucro")

	admin, err := f.uc.List(ctx, dto.PageRequest{}, access.For(entity.RoleAdmin))
	require.NoError(t, err)
	require.Len(t, admin.Items, 3)
	require.NotNil(t, admin.Items[0].Profit)
	assert.True(t, admin.Items[0].Profit.Equal(decimal.NewFromInt(40)))
}
