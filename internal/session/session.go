// Package session keeps authenticated-state for the HTTP surface: an opaque
// bearer token mapped to an account. This is session *state*, not credential
// security — tokens are random but nothing is hashed or signed.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

type Session struct {
	Token     string
	UserID    string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is an in-memory token table with a fixed TTL.
type Store struct {
	mu      sync.Mutex
	byToken map[string]Session
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		byToken: make(map[string]Session),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Open mints a fresh token for the account and records the session.
func (s *Store) Open(_ context.Context, userID, role string) (Session, error) {
	token, err := newToken()
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.byToken[token] = sess
	return sess, nil
}

// Get resolves a token. Expired sessions are dropped on lookup.
func (s *Store) Get(_ context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[token]
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.byToken, token)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete drops the session; unknown tokens are a no-op.
func (s *Store) Delete(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
