package jwt

import (
	"FoodBridge-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecret(t *testing.T, secret string) {
	t.Helper()
	prev := domain.JwtSecret
	domain.JwtSecret = secret
	t.Cleanup(func() { domain.JwtSecret = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	setSecret(t, "test-secret")
	svc := NewJWTService()

	token := svc.GenerateTokenAdmin("admin@example.com")
	require.NotEmpty(t, token)

	email, role, err := svc.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
	assert.Equal(t, RoleAdmin, role)
}

func TestTokenWrongSecret(t *testing.T) {
	setSecret(t, "test-secret")
	token := NewJWTService().GenerateTokenAdmin("admin@example.com")

	setSecret(t, "another-secret")
	_, _, err := NewJWTService().GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageToken(t *testing.T) {
	setSecret(t, "test-secret")
	svc := NewJWTService()

	_, _, err := svc.GetSubjectByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
