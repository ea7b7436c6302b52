package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/auth"
	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
)

// AuthHandler maneja login y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Session godoc
// @Summary      Sesión actual
// @Description  Usuario, pantallas alcanzables y capacidades del rol. La sesión empieza en el dashboard.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s, err := h.uc.Session(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.Response())
}

// Navigate godoc
// @Summary      Navegar a una pantalla
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        page  path  string  true  "dashboard | sales | inventory | damages | reports | settings"
// @Success      200   {object}  dto.SessionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/session/pages/{page} [get]
func (h *AuthHandler) Navigate(c *fiber.Ctx) error {
	s, err := h.uc.Session(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	if err := s.Navigate(access.Page(c.Params("page"))); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.Response())
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  El token sigue siendo válido hasta expirar; el cliente lo descarta. Devuelve la sesión en el dashboard.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s, err := h.uc.Session(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	s.Logout()
	return c.JSON(s.Response())
}
