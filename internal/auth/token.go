package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL is the session lifetime. The cookie Max-Age uses the
	// same value so claim expiry and cookie expiry never disagree.
	TokenTTL = 7 * 24 * time.Hour

	// TokenCookie is the cookie carrying the signed session token.
	TokenCookie = "token"
)

// ErrInvalidToken covers missing, malformed, badly signed and expired
// tokens. Callers map it to 401; the distinction is not surfaced.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// GenerateToken mints a signed HS256 session token for the user.
func GenerateToken(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return token.SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// identity. It is pure: no storage is consulted, the claims are
// self-contained in the signed token.
func VerifyToken(tokenString string, secret []byte) (userID, email string, err error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.UserID, claims.Email, nil
}
