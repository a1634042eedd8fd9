package domain

import "github.com/golang-jwt/jwt/v5"

// Credentials representa las credenciales del operador enviadas al login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Claims representa los claims del token de acceso de la API
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
