package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens stay valid for 10 hours after issuance.
const TokenTTL = 10 * time.Hour

var ErrMissingSecret = errors.New("JWT_SECRET not set")

func GenerateJWT(email, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ParseJWT verifies the signature and expiry and returns the subject email
// and role claim. Expired tokens surface as jwt.ErrTokenExpired.
func ParseJWT(tokenString string) (email, role string, err error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	email, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	if email == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	return email, role, nil
}
