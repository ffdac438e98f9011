// Package auth issues and verifies the JWT credentials used by the HTTP
// layer. Access tokens are short-lived; refresh tokens are long-lived and
// additionally checked against the copy persisted on the user row.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds embedded in claims so one token cannot stand in for the other.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims represents the JWT token claims.
type Claims struct {
	UserID string `json:"uid"`
	Kind   string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens with a shared
// HMAC secret.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken creates a new short-lived access token for a user.
func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return m.sign(userID, KindAccess, m.accessTTL)
}

// GenerateRefreshToken creates a new long-lived refresh token for a user.
func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(userID, KindRefresh, m.refreshTTL)
}

func (m *TokenManager) sign(userID, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "videotube",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses a token, checks its signature and expiry, and confirms it is
// of the expected kind. It returns the user ID the token was issued for.
func (m *TokenManager) Verify(tokenString, kind string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Kind != kind {
		return "", fmt.Errorf("token kind mismatch")
	}

	return claims.UserID, nil
}
