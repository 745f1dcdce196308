package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect returns a client for cfg after a successful PING.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Store keeps sessions in Redis; expiry is delegated to key TTLs.
type Store struct {
	client redis.Cmdable
	now    func() time.Time
}

func New(client redis.Cmdable) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return session.ErrExpired
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ID, data, ttl).Err(); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		zap.L().Error("can't get session", zap.Error(err))
		return nil, err
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Expired(s.now()) {
		return nil, session.ErrNotFound
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}
