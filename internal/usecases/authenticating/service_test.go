package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
)

func newAuthService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Secret = "clave-de-firma-de-prueba"
	cfg.Auth.OperatorUsername = "operador"
	cfg.Auth.OperatorPasswordHash = string(hash)
	cfg.Auth.TokenTTLHours = 1

	return &Service{cfg: cfg}
}

func TestService_Login(t *testing.T) {
	service := newAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciales correctas devuelven un token",
			username: "operador",
			password: "secreto123",
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Contraseña incorrecta",
			username: "operador",
			password: "otra",
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Usuario incorrecto con contraseña correcta",
			username: "admin",
			password: "secreto123",
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Campos vacíos",
			username: "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newAuthService(t)

	t.Run("Token emitido por el propio servicio es válido", func(t *testing.T) {
		token, err := service.Login("operador", "secreto123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "operador", claims.Username)
	})

	t.Run("Token expirado", func(t *testing.T) {
		claims := domain.Claims{
			Username: "operador",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("clave-de-firma-de-prueba"))
		require.NoError(t, err)

		_, err = service.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token firmado con otra clave", func(t *testing.T) {
		claims := domain.Claims{
			Username: "operador",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("otra-clave"))
		require.NoError(t, err)

		_, err = service.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("no-es-un-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
