package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/luviel-fluxo/internal/application/analytics"
)

// ReportHandler maneja los reportes financieros (sólo ADMIN).
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte financiero por período
// @Description  Receita, lucro, margen, totales por forma de pagamento y fluxo de caixa.
// @Description  period=day (hoy), week (últimos 7 días) o month (mes en curso). Default: day.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "day | week | month"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	report, err := h.uc.Build(c.Context(), c.Query("period"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// GetPDF godoc
// @Summary      Reporte financiero en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "day | week | month"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.ExportPDF(c.Context(), c.Query("period"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, body)
}

// GetXML godoc
// @Summary      Reporte financiero en XML firmado por digest
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        period  query  string  false  "day | week | month"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/xml [get]
func (h *ReportHandler) GetXML(c *fiber.Ctx) error {
	body, filename, err := h.uc.ExportXML(c.Context(), c.Query("period"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/xml; charset=utf-8", filename, body)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
