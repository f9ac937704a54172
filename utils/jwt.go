package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"

	"quickcowork/config"
)

// signingKey resolves the HMAC secret on each use: the configured value
// wins, then the JWT_SECRET environment variable, then a development-only
// default.
func signingKey() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("QUICKCOWORK")
}

// GenerateToken creates a signed JWT token with the given subject (userID),
// email and role. The token expires after the specified duration.
func GenerateToken(subject, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
}

// TokenClaims holds the identity claims extracted from a validated token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// ExtractClaims validates a token string and returns its identity claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &TokenClaims{UserID: sub, Email: email, Role: role}, nil
}
