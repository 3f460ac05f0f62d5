// session.go - Session tokens binding a request to a principal

package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-cafe-backend/apperr"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// Sessions issues and resolves session tokens. Tokens are signed JWTs whose
// jti must also be present in the active set, so logout revokes a token
// before its expiry and no session survives a process restart.
type Sessions struct {
	secret []byte
	ttl    time.Duration

	mu     sync.RWMutex
	active map[string]struct{}
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
		active: make(map[string]struct{}),
	}
}

// Login establishes a fresh session for the user and returns its token.
// Tokens from earlier logins keep working until logged out or expired.
func (s *Sessions) Login(userID uint) (string, error) {
	sid := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.active[sid] = struct{}{}
	s.mu.Unlock()

	return signed, nil
}

// Logout revokes the session carried by the token. Already-invalid tokens
// are ignored.
func (s *Sessions) Logout(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.active, claims.ID)
	s.mu.Unlock()
}

// Resolve returns the user id bound to a token, or ErrUnauthenticated if
// the token is missing, malformed, expired or revoked.
func (s *Sessions) Resolve(token string) (uint, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, apperr.ErrUnauthenticated
	}

	s.mu.RLock()
	_, ok := s.active[claims.ID]
	s.mu.RUnlock()
	if !ok {
		return 0, apperr.ErrUnauthenticated
	}

	return claims.UserID, nil
}

func (s *Sessions) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, apperr.ErrUnauthenticated
	}
	return claims, nil
}
