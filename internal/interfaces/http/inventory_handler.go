package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/inventory"
)

// InventoryHandler maneja el registro de quebras (protegido).
type InventoryHandler struct {
	uc *inventory.DamageUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.DamageUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterDamage godoc
// @Summary      Registrar quebra
// @Description  Guarda la quebra y descuenta la cantidad del stock del producto.
// @Tags         damages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DamageRequest  true  "productId, quantity, reason"
// @Success      201   {object}  entity.Damage
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/damages [post]
func (h *InventoryHandler) RegisterDamage(c *fiber.Ctx) error {
	var in dto.DamageRequest
	if err := bind(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDamages godoc
// @Summary      Listar quebras
// @Tags         damages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Damage
// @Router       /api/damages [get]
func (h *InventoryHandler) ListDamages(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
