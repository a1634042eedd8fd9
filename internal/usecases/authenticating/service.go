package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rvaldez-mx/auto-market-api/internal/config"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	"github.com/rvaldez-mx/auto-market-api/pkg/apiErrors"
)

// Authenticator define las operaciones de autenticación de la API
type Authenticator interface {
	// Login valida la credencial del operador y devuelve un token de acceso
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service implementa la interfaz Authenticator contra la credencial única
// de operación definida en la configuración
type Service struct {
	cfg *config.Config
}

// NewService crea una nueva instancia del servicio de autenticación
func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuario y contraseña son obligatorios")
	}

	// La comparación de contraseña corre siempre, aunque el usuario no
	// coincida, para no filtrar cuál de los dos campos falló
	hash := s.cfg.Auth.OperatorPasswordHash
	passwordErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if username != s.cfg.Auth.OperatorUsername || passwordErr != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciales incorrectas")
	}

	token, err := s.generateJWT(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de acceso")
	}

	return token, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
