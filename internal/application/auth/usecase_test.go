package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/application/auth"
	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository/mocks"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/luviel-fluxo/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "fluxo-test"}

func newUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	db, err := localdb.Open(context.Background(), memory.New())
	require.NoError(t, err)
	return auth.NewAuthUseCase(localdb.NewUserRepository(db), jwtCfg, nil)
}

func TestLogin_AdminOK(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Contains(t, resp.Pages, "reports")
	assert.Contains(t, resp.Capabilities, string(access.ViewCost))

	userID, username, role, err := pkgjwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "ADMIN", role)
}

func TestLogin_VendedorNoVeRelatorios(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "vendedor", Password: "123"})
	require.NoError(t, err)
	assert.NotContains(t, resp.Pages, "reports")
	assert.NotContains(t, resp.Capabilities, string(access.ManageProducts))
}

func TestLogin_DistingueErrores(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "123"})
	assert.True(t, errors.Is(err, domain.ErrLoginNotFound))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234"})
	assert.True(t, errors.Is(err, domain.ErrWrongPassword))

	// Comparación exacta: mayúsculas cuentan
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ADMIN", Password: "123"})
	assert.True(t, errors.Is(err, domain.ErrLoginNotFound))
}

func TestLogin_ErrorDelStore(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	boom := errors.New("store indisponível")
	repo.On("GetByUsername", context.Background(), "admin").Return(nil, boom).Once()

	uc := auth.NewAuthUseCase(repo, jwtCfg, nil)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "123"})

	assert.ErrorIs(t, err, boom)
	repo.AssertExpectations(t)
}

func TestSession_NavegacionPorRol(t *testing.T) {
	uc := newUseCase(t)

	s, err := uc.Session(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, access.PageDashboard, s.ActivePage())

	require.NoError(t, s.Navigate(access.PageSales))
	assert.Equal(t, access.PageSales, s.ActivePage())

	err = s.Navigate(access.PageReports)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, access.PageSales, s.ActivePage(), "navegación rechazada no cambia la pantalla")

	s.Logout()
	assert.Equal(t, access.PageDashboard, s.ActivePage())
	assert.Equal(t, "dashboard", s.Response().ActivePage)
}

func TestSession_UsuarioEliminado(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Session(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
