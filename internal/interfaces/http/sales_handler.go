package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/sales"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
)

const recentSalesLimit = 5

// SalesHandler maneja checkout y consulta de vendas.
type SalesHandler struct {
	uc *sales.SalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Checkout godoc
// @Summary      Finalizar venta
// @Description  Valida el carrinho contra el stock, calcula total, lucro y troco, registra la venta,
// @Description  baja el stock y crea la entrada de caixa.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrinho y forma de pagamento"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := bind(c, &in); err != nil {
		return nil
	}
	sale, err := h.uc.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(*sale, GetCapabilities(c).Can(access.ViewProfit)))
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 50, max 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	if err := validate.Struct(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), page, GetCapabilities(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Vendas recentes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/recent [get]
func (h *SalesHandler) Recent(c *fiber.Ctx) error {
	list, err := h.uc.Recent(c.Context(), recentSalesLimit)
	if err != nil {
		return writeError(c, err)
	}
	showProfit := GetCapabilities(c).Can(access.ViewProfit)
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSaleResponse(s, showProfit))
	}
	return c.JSON(out)
}
