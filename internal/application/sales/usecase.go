// Package sales contiene el checkout del caixa y el registro de vendas.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/checkout"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/ids"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// SalesUseCase registra vendas y lista el histórico.
//
// RecordSale escribe tres colecciones en secuencia (vendas, productos, caixa) sin transacción:
// si un paso falla, los anteriores quedan escritos y el error se devuelve al caller.
type SalesUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	sales    repository.SaleRepository
	cash     repository.CashEntryRepository
	log      *logger.Logger

	now       func() time.Time
	newID     func() string
	newSaleID func() string
}

// Option ajusta dependencias no persistentes (reloj, generadores de id).
type Option func(*SalesUseCase)

// WithClock fija el reloj.
func WithClock(now func() time.Time) Option {
	return func(uc *SalesUseCase) { uc.now = now }
}

// WithIDs fija los generadores de id de línea y de venta.
func WithIDs(newID, newSaleID func() string) Option {
	return func(uc *SalesUseCase) {
		uc.newID = newID
		uc.newSaleID = newSaleID
	}
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	cash repository.CashEntryRepository,
	log *logger.Logger,
	opts ...Option,
) *SalesUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &SalesUseCase{
		users:     users,
		products:  products,
		sales:     sales,
		cash:      cash,
		log:       log.Named("sales"),
		now:       time.Now,
		newID:     ids.New,
		newSaleID: ids.Sale,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RecordSale persiste una venta ya calculada:
//  1. agrega la venta a luviel_sales
//  2. descuenta el stock de cada línea (sin piso)
//  3. agrega la entrada INCOME "Venda #<últimos 4>" por el total
func (uc *SalesUseCase) RecordSale(ctx context.Context, sale entity.Sale) error {
	log := uc.log.With("sale_id", sale.ID)

	// ── 1. Venta ──────────────────────────────────────────────────────────────
	if err := uc.sales.Append(ctx, sale); err != nil {
		log.Error().Err(err).Msg("recordSale: falha ao gravar venda")
		return fmt.Errorf("registrar venda: %w", err)
	}
	log.Debug().Int("items", len(sale.Items)).Msg("recordSale: venda gravada")

	// ── 2. Stock ─────────────────────────────────────────────────────────────
	quantities := make(map[string]int, len(sale.Items))
	for _, it := range sale.Items {
		quantities[it.ProductID] += it.Quantity
	}
	if err := uc.products.DecrementStock(ctx, quantities); err != nil {
		log.Error().Err(err).Msg("recordSale: venda gravada, falha ao baixar estoque")
		return fmt.Errorf("baixar estoque: %w", err)
	}
	log.Debug().Msg("recordSale: estoque atualizado")

	// ── 3. Fluxo de caixa ─────────────────────────────────────────────────────
	entry := entity.CashEntry{
		ID:          ids.CashEntry(uc.now()),
		Date:        sale.Date,
		Type:        entity.CashIncome,
		Amount:      sale.Total,
		Description: "Venda #" + ids.Suffix(sale.ID, 4),
	}
	if err := uc.cash.Append(ctx, entry); err != nil {
		log.Error().Err(err).Msg("recordSale: venda e estoque gravados, falha no fluxo de caixa")
		return fmt.Errorf("lançar fluxo de caixa: %w", err)
	}
	log.Debug().Str("cash_entry_id", entry.ID).Msg("recordSale: entrada de caixa gravada")

	log.Info().Str("total", sale.Total.String()).Str("payment", string(sale.PaymentMethod)).Msg("venda registrada")
	return nil
}

// Checkout valida el carrinho contra el stock actual, calcula totales y troco, y registra la venta.
// Líneas repetidas del mismo producto se suman.
func (uc *SalesUseCase) Checkout(ctx context.Context, sellerID string, in dto.CheckoutRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: forma de pagamento %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	seller, err := uc.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if seller == nil {
		return nil, domain.ErrUnauthorized
	}

	order := make([]string, 0, len(in.Items))
	cart := make(map[string]int, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantidade deve ser >= 1", domain.ErrInvalidInput)
		}
		if _, seen := cart[line.ProductID]; !seen {
			order = append(order, line.ProductID)
		}
		cart[line.ProductID] += line.Quantity
	}

	catalog, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	byID := make(map[string]entity.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	items := make([]entity.SaleItem, 0, len(order))
	for _, productID := range order {
		product, ok := byID[productID]
		if !ok {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, productID)
		}
		qty := cart[productID]
		if qty > product.Quantity {
			return nil, fmt.Errorf("%w: %s (disponível %d, pedido %d)", domain.ErrInsufficientStock, product.Name, product.Quantity, qty)
		}
		item := entity.SaleItem{
			ID:          uc.newID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Cost:        product.Cost,
			Quantity:    qty,
		}
		item.Subtotal = checkout.Subtotal(item)
		items = append(items, item)
	}

	total, profit := checkout.Totals(items)
	if in.PaymentMethod == entity.PaymentCash && in.AmountReceived.LessThan(total) {
		return nil, domain.ErrReceivedBelowTotal
	}

	sale := entity.Sale{
		ID:             uc.newSaleID(),
		Date:           uc.now(),
		UserID:         seller.ID,
		UserName:       seller.Name,
		Items:          items,
		Total:          total,
		Profit:         profit,
		PaymentMethod:  in.PaymentMethod,
		AmountReceived: checkout.AmountReceived(in.PaymentMethod, in.AmountReceived, total),
		Change:         checkout.Change(in.PaymentMethod, in.AmountReceived, total),
	}
	if err := uc.RecordSale(ctx, sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// List devuelve una página del histórico, más recientes primero.
func (uc *SalesUseCase) List(ctx context.Context, page dto.PageRequest, caps access.Capabilities) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	all, err := uc.newestFirst(ctx)
	if err != nil {
		return nil, err
	}
	showProfit := caps.Can(access.ViewProfit)
	start := min(page.Offset, len(all))
	end := min(start+page.Limit, len(all))
	items := make([]dto.SaleResponse, 0, end-start)
	for _, s := range all[start:end] {
		items = append(items, dto.ToSaleResponse(s, showProfit))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}, nil
}

// Recent las últimas n vendas, más recientes primero.
func (uc *SalesUseCase) Recent(ctx context.Context, n int) ([]entity.Sale, error) {
	all, err := uc.newestFirst(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// newestFirst invierte el orden de inserción.
func (uc *SalesUseCase) newestFirst(ctx context.Context) ([]entity.Sale, error) {
	list, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, len(list))
	for i, s := range list {
		out[len(list)-1-i] = s
	}
	return out, nil
}
