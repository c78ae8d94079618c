package jwtutil

import (
	"time"
	"warehouse-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	secret     = []byte("secret-key")
	expiration = 24 * time.Hour
)

// SessionClaims represents the JWT claims for an operator session
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Initialize configures the signing key and token lifetime
func Initialize(cfg *config.JWTConfig) {
	secret = []byte(cfg.SigningKey)
	if cfg.ExpirationTime != 0 {
		expiration = cfg.ExpirationTime
	}
}

// GenerateToken creates a session JWT for the authenticated operator
func GenerateToken(username string) (string, error) {
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses the session JWT
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
