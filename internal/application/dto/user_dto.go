package dto

import "github.com/jhoicas/luviel-fluxo/internal/domain/entity"

// LoginRequest credenciales del caixa.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario + lo que el rol puede hacer.
type LoginResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	Pages        []string     `json:"pages"`
	Capabilities []string     `json:"capabilities"`
}

// UserResponse usuario sin contraseña.
type UserResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// SessionResponse estado de la sesión: pantalla activa y menú disponible.
type SessionResponse struct {
	User         UserResponse `json:"user"`
	ActivePage   string       `json:"activePage"`
	Pages        []string     `json:"pages"`
	Capabilities []string     `json:"capabilities"`
}

// UpdateProfileRequest cambio de nombre y, opcionalmente, de contraseña.
// Password vacío = se mantiene la actual.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
