package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/application/auth"
	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Estanteria-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewStore().Users(), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "estanteria-test",
	})
}

func TestLogin_TokenConRol(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, "gerente@bodega.co", "s3creto", "Gerente", entity.RoleGerente)
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "Gerente@bodega.co", Password: "s3creto"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGerente, out.User.Role)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleGerente, claims.Role)
}

func TestLogin_Errores(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, "op@bodega.co", "clave", "", "")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "op@bodega.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@bodega.co", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.RegisterUser(ctx, "op@bodega.co", "clave", "", "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.RegisterUser(ctx, "x@bodega.co", "clave", "", "vendedor")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
