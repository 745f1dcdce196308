package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	userrepo "github.com/GlebRadaev/g4market/internal/repo/user-repo"
	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingCredentials = errors.New("missing username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	sessions    session.Store
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sessionTTL  time.Duration
	now         func() time.Time
}

func New(repo Repo, sessions session.Store, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		sessions:    sessions,
		hashService: hashService,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserExists) {
			zap.L().Info("user already exists", zap.String("username", username))
			return nil, ErrUsernameTaken
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

// Authenticate does not tell an unknown username from a wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

// StartSession stores a new session for user and returns the signed cookie
// token with its expiry.
func (s *Service) StartSession(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.now()
	sess := &session.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		zap.L().Error("can't create session: ", zap.Error(err))
		return "", time.Time{}, err
	}

	token, err := s.jwtService.GenerateJWT(sess.ID, sess.ExpiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		if delErr := s.sessions.Delete(ctx, sess.ID); delErr != nil {
			zap.L().Error("can't delete session: ", zap.Error(delErr))
		}
		return "", time.Time{}, err
	}
	return token, sess.ExpiresAt, nil
}

func (s *Service) ResolveSession(ctx context.Context, token string) (*session.Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		zap.L().Debug("rejected session token", zap.Error(err))
		return nil, session.ErrNotFound
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		zap.L().Error("can't delete session: ", zap.Error(err))
		return err
	}
	zap.L().Info("session ended", zap.String("session_id", sessionID))
	return nil
}
