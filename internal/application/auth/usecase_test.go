package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/application/auth"
	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/Leadflow-api/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	users := usecase.NewUserUseCase(store.Users)
	_, err := users.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Admin",
		Email:    "admin@leadflow.test",
		Password: "secreto123",
		Role:     "Admin",
	})
	require.NoError(t, err)
	return auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "leadflow-test",
	}), store
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc, _ := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@leadflow.test", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "Admin", resp.User.Role)

	userID, role, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "Admin", role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@leadflow.test", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocidoMismoError(t *testing.T) {
	uc, _ := newAuthFixture(t)

	// mismo error que password incorrecto: no se filtra qué cuentas existen
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@leadflow.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
