package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
)

// RequireCapability devuelve un middleware Fiber que exige todas las capacidades indicadas
// para el rol del token. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → token sin rol.
//   - 403 Forbidden    → el rol no tiene la capacidad.
func RequireCapability(required ...access.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "role não encontrado no token",
			})
		}
		caps := GetCapabilities(c)
		missing := make([]string, 0)
		for _, r := range required {
			if !caps.Can(r) {
				missing = append(missing, string(r))
			}
		}
		if len(missing) > 0 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "acesso restrito: " + strings.Join(missing, ", "),
			})
		}
		return c.Next()
	}
}
