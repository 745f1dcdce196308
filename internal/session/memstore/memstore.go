package memstore

import (
	"context"
	"time"

	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

// Store keeps sessions in process memory. Sessions are lost on restart.
type Store struct {
	cache *ttlcache.Cache[string, session.Session]
	now   func() time.Time
}

func New() *Store {
	return &Store{
		// Reads must not extend a session past its ExpiresAt.
		cache: ttlcache.New[string, session.Session](
			ttlcache.WithDisableTouchOnHit[string, session.Session](),
		),
		now: time.Now,
	}
}

func (s *Store) Create(_ context.Context, sess *session.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return session.ErrExpired
	}
	s.cache.Set(sess.ID, *sess, ttl)
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*session.Session, error) {
	item := s.cache.Get(id)
	if item == nil {
		return nil, session.ErrNotFound
	}
	sess := item.Value()
	if sess.Expired(s.now()) {
		return nil, session.ErrNotFound
	}
	return &sess, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Run evicts expired sessions as they expire until ctx is done.
func (s *Store) Run(ctx context.Context) {
	zap.L().Info("session cleanup started")
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.cache.Start()
	}()

	<-ctx.Done()
	s.cache.Stop()
	<-done
	zap.L().Info("context canceled, stopping session cleanup")
}

// Len counts stored sessions, including expired ones not yet evicted.
func (s *Store) Len() int {
	return s.cache.Len()
}
