package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// Claims mirrors the token payload issued by the backend.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session holds the bearer token for the current operator. It is created
// explicitly at startup and cleared on logout; nothing about it is global.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
}

// New builds a session from a raw bearer token. The token signature is not
// verified here: the client does not hold the signing secret, and the
// backend rejects forged tokens anyway. Claims are decoded for display and
// for local expiry checks only.
func New(token string) (*Session, error) {
	s := &Session{}
	if token == "" {
		return s, nil
	}
	if err := s.SetToken(token); err != nil {
		return nil, err
	}
	return s, nil
}

// SetToken installs a new bearer token, replacing any prior one.
func (s *Session) SetToken(token string) error {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "malformed session token")
	}
	s.mu.Lock()
	s.token = token
	s.claims = claims
	s.mu.Unlock()
	return nil
}

// Token returns the raw bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Claims returns the decoded token payload, nil when logged out.
func (s *Session) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// Valid reports whether a token is present and not expired.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.claims == nil {
		return false
	}
	if s.claims.ExpiresAt == nil {
		return true
	}
	return s.claims.ExpiresAt.After(time.Now())
}

// Clear drops the token, returning the session to the logged-out state.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.claims = nil
	s.mu.Unlock()
}
