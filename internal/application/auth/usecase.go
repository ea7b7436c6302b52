package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/jwt"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Login verifica usuario/senha (comparación exacta, texto plano), genera JWT y retorna token + usuario.
// Distingue usuario inexistente (ErrLoginNotFound) de senha incorrecta (ErrWrongPassword).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		uc.log.Info().Str("username", in.Username).Msg("login: usuário inexistente")
		return nil, domain.ErrLoginNotFound
	}
	if user.Password != in.Password {
		uc.log.Info().Str("username", in.Username).Msg("login: senha incorreta")
		return nil, domain.ErrWrongPassword
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	caps := access.For(user.Role)
	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login ok")
	return &dto.LoginResponse{
		Token:        token,
		User:         ToUserResponse(user),
		Pages:        pageNames(caps.Pages),
		Capabilities: capabilityNames(caps.List()),
	}, nil
}

// Session reconstruye la sesión del usuario autenticado. El usuario debe seguir existiendo en el store.
func (uc *AuthUseCase) Session(ctx context.Context, userID string) (*Session, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return NewSession(*user), nil
}

// ToUserResponse proyecta el usuario sin contraseña.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Username: u.Username, Role: u.Role}
}

func pageNames(pages []access.Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, string(p))
	}
	return out
}

func capabilityNames(caps []access.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}
