package session

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session already expired")
)

// Session is the server-side record behind a session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Store interface {
	// Create returns ErrExpired for a session past its expiry.
	Create(ctx context.Context, s *Session) error
	// Get returns ErrNotFound for unknown and expired sessions.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
