package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// UserUseCase aplica reglas de negocio para usuarios (perfil propio).
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, log: log.Named("users")}
}

// List devuelve todos los usuarios sin contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, entityToUserResponse(&users[i]))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	resp := entityToUserResponse(user)
	return &resp, nil
}

// UpdateProfile cambia nombre y, si se envía, la contraseña (debe coincidir con la confirmación).
// ErrNotFound cuando el id ya no existe en el store.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	update := entity.UserUpdate{ID: id, Name: name}
	if in.Password != "" {
		if in.Password != in.ConfirmPassword {
			return nil, domain.ErrPasswordMismatch
		}
		pw := in.Password
		update.Password = &pw
	}
	ok, err := uc.repo.Update(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Str("user_id", id).Bool("password_changed", update.Password != nil).Msg("perfil atualizado")
	return uc.GetByID(ctx, id)
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Username: u.Username, Role: u.Role}
}
