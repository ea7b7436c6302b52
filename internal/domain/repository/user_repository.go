package repository

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update combina nombre y, si viene, password. false sin escritura si el id no existe.
	Update(ctx context.Context, in entity.UserUpdate) (bool, error)
}
