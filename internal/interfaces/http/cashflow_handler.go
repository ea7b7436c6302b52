package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/cashflow"
	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
)

// CashFlowHandler movimientos de caixa.
type CashFlowHandler struct {
	uc *cashflow.CashFlowUseCase
}

// NewCashFlowHandler construye el handler.
func NewCashFlowHandler(uc *cashflow.CashFlowUseCase) *CashFlowHandler {
	return &CashFlowHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de caixa
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.CashEntry
// @Router       /api/cashflow [get]
func (h *CashFlowHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar entrada o salida manual
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashEntryRequest  true  "type, amount, description"
// @Success      201   {object}  entity.CashEntry
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashflow [post]
func (h *CashFlowHandler) Record(c *fiber.Ctx) error {
	var in dto.CashEntryRequest
	if err := bind(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
