// Package token issues and verifies the signed bearer tokens that bind a
// user identity to a tenant.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campuslms/rewards-api/internal/apperror"
)

// Claims is the payload carried by every bearer token. Produced once at
// login and read-only for the life of the token.
type Claims struct {
	UserID     string `json:"user_id"`
	RoleID     string `json:"role_id"`
	TenantID   string `json:"tenant_id"`
	SuperAdmin bool   `json:"super_admin"`
	jwt.RegisteredClaims
}

// Manager signs and validates tokens with a shared server secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claims with HS256, stamping issue and expiry times.
// Claims missing any identity field are rejected.
func (m *Manager) Issue(claims *Claims) (string, error) {
	if claims.UserID == "" || claims.RoleID == "" || claims.TenantID == "" {
		return "", apperror.BadRequest("token claims require user, role and tenant identifiers")
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", apperror.Internal("failed to sign token", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns its claims. Any
// failure (bad signature, expiry, malformed input) comes back as a single
// unauthenticated error; callers never see jwt internals.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperror.Wrap(apperror.KindUnauthenticated, "invalid or expired token", err)
	}
	return claims, nil
}
