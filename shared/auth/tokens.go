// Package auth issues and verifies the short-lived bearer tokens used for
// service-to-service calls. Tokens are HS256 JWTs with a space-separated
// scope claim, matching what the downstream services verify.
package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenTTL = time.Hour

// refreshMargin forces a re-mint shortly before expiry so a token handed to
// an outbound call cannot expire mid-flight.
const refreshMargin = time.Minute

// TokenIssuer mints service tokens for a fixed subject and caches them until
// close to expiry.
type TokenIssuer struct {
	secret  []byte
	subject string

	mu        sync.Mutex
	token     string
	scopes    string
	expiresAt time.Time
}

// NewTokenIssuer creates an issuer signing with the shared secret.
func NewTokenIssuer(secret, subject string) *TokenIssuer {
	return &TokenIssuer{
		secret:  []byte(secret),
		subject: subject,
	}
}

// Issue returns a bearer token carrying the given scopes, reusing the cached
// token while it remains valid for the same scopes.
func (i *TokenIssuer) Issue(scopes string) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.token != "" && i.scopes == scopes && time.Now().Before(i.expiresAt.Add(-refreshMargin)) {
		return i.token, nil
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   i.subject,
		"scope": scopes,
		"type":  "service",
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	i.token = token
	i.scopes = scopes
	i.expiresAt = now.Add(tokenTTL)

	return token, nil
}

// Claims are the verified contents of a bearer token.
type Claims struct {
	Subject string
	Scopes  []string
}

// HasScope reports whether the token carries the given scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// VerifyToken validates an HS256 token against the shared secret and extracts
// its claims.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if scope, ok := mapClaims["scope"].(string); ok && scope != "" {
		claims.Scopes = strings.Fields(scope)
	}

	return claims, nil
}
