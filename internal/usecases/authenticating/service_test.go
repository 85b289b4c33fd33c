package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/pkg/apiErrors"
)

func newAuthService(now time.Time) *Service {
	cfg := &config.Config{SecretKey: "test-secret", Snap: config.Snap{OrgID: "org-1"}}
	return &Service{cfg: cfg, now: func() time.Time { return now }}
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	now := time.Now()
	service := newAuthService(now)

	token, err := service.GenerateToken("bi-pipeline", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bi-pipeline", claims.ClientName)
	assert.Equal(t, "org-1", claims.OrgID)
	assert.Equal(t, "bi-pipeline", claims.Subject)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	expired, err := newAuthService(issuedAt).GenerateToken("bi-pipeline", time.Hour)
	require.NoError(t, err)

	otherKey := &Service{cfg: &config.Config{SecretKey: "other"}, now: time.Now}
	foreign, err := otherKey.GenerateToken("bi-pipeline", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		expectedErr  error
		expectedCode string
	}{
		{name: "Token expirado", token: expired, expectedErr: ErrExpiredToken, expectedCode: apiErrors.ErrExpiredToken},
		{name: "Assinatura de outra chave", token: foreign, expectedErr: ErrInvalidToken, expectedCode: apiErrors.ErrInvalidToken},
		{name: "Algoritmo none", token: none, expectedErr: ErrInvalidToken, expectedCode: apiErrors.ErrInvalidToken},
		{name: "Token malformado", token: "abc", expectedErr: ErrInvalidToken, expectedCode: apiErrors.ErrInvalidToken},
	}

	service := newAuthService(time.Now())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedErr)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}
}

func TestService_GenerateToken_Validation(t *testing.T) {
	_, err := newAuthService(time.Now()).GenerateToken("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	noKey := &Service{cfg: &config.Config{}, now: time.Now}
	_, err = noKey.GenerateToken("bi-pipeline", 0)
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}
