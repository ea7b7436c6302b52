// Package cashflow expone el fluxo de caixa: entradas por venda y lançamentos manuais.
package cashflow

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

// CashFlowUseCase lista y registra movimientos de caixa.
type CashFlowUseCase struct {
	repo repository.CashEntryRepository
	log  *logger.Logger
	now  func() time.Time
}

// Option ajusta dependencias no persistentes del caso de uso.
type Option func(*CashFlowUseCase)

// WithClock fija el reloj; también define el id cf-<unixmilli>.
func WithClock(now func() time.Time) Option {
	return func(uc *CashFlowUseCase) { uc.now = now }
}

// NewCashFlowUseCase construye el caso de uso.
func NewCashFlowUseCase(repo repository.CashEntryRepository, log *logger.Logger, opts ...Option) *CashFlowUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &CashFlowUseCase{repo: repo, log: log.Named("cashflow"), now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// List devuelve los movimientos, más recientes primero.
func (uc *CashFlowUseCase) List(ctx context.Context) ([]entity.CashEntry, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CashEntry, len(list))
	for i, e := range list {
		out[len(list)-1-i] = e
	}
	return out, nil
}

// Record agrega un lançamento manual. El monto debe ser positivo.
func (uc *CashFlowUseCase) Record(ctx context.Context, in dto.CashEntryRequest) (*entity.CashEntry, error) {
	description := strings.TrimSpace(in.Description)
	if !in.Type.Valid() || description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	entry := entity.CashEntry{
		ID:          ids.CashEntry(now),
		Date:        now,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: description,
	}
	if err := uc.repo.Append(ctx, entry); err != nil {
		uc.log.Error().Err(err).Msg("falha ao lançar movimento de caixa")
		return nil, fmt.Errorf("lançar movimento: %w", err)
	}
	uc.log.Info().Str("cash_entry_id", entry.ID).Str("type", string(entry.Type)).Str("amount", entry.Amount.String()).Msg("movimento de caixa lançado")
	return &entry, nil
}
