package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/application/usecase"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/memory"
)

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, *localdb.UserRepo) {
	t.Helper()
	db, err := localdb.Open(context.Background(), memory.New())
	require.NoError(t, err)
	repo := localdb.NewUserRepository(db)
	return usecase.NewUserUseCase(repo, nil), repo
}

func TestUpdateProfile_SoloNombreConservaSenha(t *testing.T) {
	uc, repo := newUserUseCase(t)
	ctx := context.Background()

	resp, err := uc.UpdateProfile(ctx, "2", dto.UpdateProfileRequest{Name: "Maria Vendedora"})
	require.NoError(t, err)
	assert.Equal(t, "Maria Vendedora", resp.Name)

	u, _ := repo.GetByID(ctx, "2")
	assert.Equal(t, "123", u.Password)
}

// Confirmación sin senha nueva: se ignora y sólo cambia el nombre.
func TestUpdateProfile_ConfirmacionSinSenhaSeIgnora(t *testing.T) {
	uc, repo := newUserUseCase(t)
	ctx := context.Background()

	resp, err := uc.UpdateProfile(ctx, "2", dto.UpdateProfileRequest{Name: "Maria", ConfirmPassword: "sobra"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.Name)

	u, _ := repo.GetByID(ctx, "2")
	assert.Equal(t, "123", u.Password)
}

func TestUpdateProfile_CambiaSenha(t *testing.T) {
	uc, repo := newUserUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, "1", dto.UpdateProfileRequest{Name: "Admin", Password: "nova", ConfirmPassword: "nova"})
	require.NoError(t, err)
	u, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, "nova", u.Password)
}

func TestUpdateProfile_Errores(t *testing.T) {
	uc, repo := newUserUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, "1", dto.UpdateProfileRequest{Name: "Admin", Password: "a", ConfirmPassword: "b"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = uc.UpdateProfile(ctx, "1", dto.UpdateProfileRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateProfile(ctx, "77", dto.UpdateProfileRequest{Name: "Ninguém"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	u, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, "123", u.Password, "nada cambia tras un error")
	assert.Equal(t, "Administrador", u.Name)
}

func TestList_SinSenhas(t *testing.T) {
	uc, _ := newUserUseCase(t)
	users, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
}
