package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vita/config"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	tokenString, err := svc.GenerateAccessToken(userID, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString, err := svc.GenerateAccessToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	other := &jwtService{accessSecret: "different-secret"}
	tokenString, err := other.GenerateAccessToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongAlgorithm(t *testing.T) {
	svc := newTestService(t)

	// Unsigned tokens must be rejected by the signing-method check.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.New().String()})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}
