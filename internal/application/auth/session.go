package auth

import (
	"fmt"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// Session usuario autenticado y pantalla activa. Siempre empieza en el dashboard.
type Session struct {
	User   entity.User
	Caps   access.Capabilities
	active access.Page
}

// NewSession abre la sesión en el dashboard.
func NewSession(user entity.User) *Session {
	return &Session{User: user, Caps: access.For(user.Role), active: access.PageDashboard}
}

// ActivePage pantalla actual.
func (s *Session) ActivePage() access.Page { return s.active }

// Navigate cambia de pantalla; ErrForbidden si el rol no la alcanza (ej. reports para VENDOR).
func (s *Session) Navigate(page access.Page) error {
	if !s.Caps.CanNavigate(page) {
		return fmt.Errorf("%w: página %s", domain.ErrForbidden, page)
	}
	s.active = page
	return nil
}

// Logout vuelve la sesión a la pantalla inicial.
func (s *Session) Logout() {
	s.active = access.PageDashboard
}

// Response proyección para HTTP.
func (s *Session) Response() dto.SessionResponse {
	return dto.SessionResponse{
		User:         ToUserResponse(&s.User),
		ActivePage:   string(s.active),
		Pages:        pageNames(s.Caps.Pages),
		Capabilities: capabilityNames(s.Caps.List()),
	}
}
