package localdb

import (
	"context"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección luviel_users.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// List devuelve todos los usuarios en el orden guardado.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	return getData[entity.User](ctx, r.db, KeyUsers)
}

// GetByID busca por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByUsername busca el primer usuario con ese login (comparación exacta).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Update combina nombre y password (si viene) sobre el registro existente.
func (r *UserRepo) Update(ctx context.Context, in entity.UserUpdate) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	index := -1
	for i := range users {
		if users[i].ID == in.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return false, nil
	}
	users[index].Name = in.Name
	if in.Password != nil {
		users[index].Password = *in.Password
	}
	if err := setData(ctx, r.db, KeyUsers, users); err != nil {
		return false, err
	}
	return true, nil
}
