package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/luviel-fluxo/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Total vendido, número de vendas, lucro (sólo ADMIN; "Restrito" para VENDOR),
// @Description  productos con stock bajo y las 5 vendas más recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetCapabilities(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
