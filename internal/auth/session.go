package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "cs-crm-backend"

var errNoSession = errors.New("no session credentials on request")

// SessionClaims represents the claims of a session token. The subject is the user id.
type SessionClaims struct {
	Email string `json:"email" example:"alice@example.com"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies HS256 session tokens carried in a cookie or
// an Authorization: Bearer header.
type SessionManager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(secret, cookieName string, ttl time.Duration) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if cookieName == "" {
		return nil, fmt.Errorf("session cookie name is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &SessionManager{secret: []byte(secret), cookieName: cookieName, ttl: ttl}, nil
}

// CookieName returns the name of the session cookie
func (m *SessionManager) CookieName() string {
	return m.cookieName
}

// TTL returns the lifetime of issued sessions
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed session token for the user
func (m *SessionManager) Issue(userID, email string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	now := time.Now()
	claims := &SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates and parses a session token
func (m *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(sessionIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// FromRequest resolves the session identity of r. The cookie wins over the header.
func (m *SessionManager) FromRequest(r *http.Request) (*Identity, error) {
	tokenString := ""
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		tokenString = cookie.Value
	} else if header := r.Header.Get("Authorization"); header != "" {
		tokenString = strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return nil, errNoSession
		}
	}
	if tokenString == "" {
		return nil, errNoSession
	}

	claims, err := m.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: claims.Subject, Email: claims.Email, Source: SourceSession}, nil
}
