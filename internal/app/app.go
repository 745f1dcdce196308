package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/g4market/internal/config"
	"github.com/GlebRadaev/g4market/internal/handlers"
	"github.com/GlebRadaev/g4market/internal/pg"
	"github.com/GlebRadaev/g4market/internal/repo"
	"github.com/GlebRadaev/g4market/internal/service"
	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/GlebRadaev/g4market/internal/session/memstore"
	"github.com/GlebRadaev/g4market/internal/session/redisstore"
	"github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	sessions session.Store

	pool  *pgxpool.Pool
	redis *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("can't load time location: %w", err)
	}
	a.cfg = cfg

	if err := a.connect(ctx); err != nil {
		return err
	}
	if err := pg.RunMigrations(a.pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		a.closeResources()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(a.pool)

	conn := pg.New(a.pool)
	a.repo = repo.New(conn, txManager)
	a.sessions = a.startSessionStore(ctx)
	a.srv = service.New(a.repo, a.sessions, cfg.SecretKey, cfg.SessionTTL)
	a.api = handlers.New(a.srv, auth.CookieConfig{Secure: cfg.CookieSecure}, loc)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// connect opens the Postgres pool and, when configured, the Redis client
// concurrently. Both are closed again if either fails.
func (a *Application) connect(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, err := getPgxpool(gCtx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.pool = pool
		return nil
	})
	if a.cfg.RedisAddress != "" {
		g.Go(func() error {
			client, err := redisstore.Connect(gCtx, redisstore.Config{
				Addr:     a.cfg.RedisAddress,
				Password: a.cfg.RedisPassword,
				DB:       a.cfg.RedisDB,
			})
			if err != nil {
				zap.L().Error("connect to redis failed: ", zap.Error(err))
				return fmt.Errorf("can't connect to redis: %w", err)
			}
			a.redis = client
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.closeResources()
		return err
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// startSessionStore picks Redis when a client is connected, otherwise an
// in-memory store whose eviction loop is bound to ctx.
func (a *Application) startSessionStore(ctx context.Context) session.Store {
	if a.redis != nil {
		zap.L().Info("using redis session store", zap.String("address", a.cfg.RedisAddress))
		return redisstore.New(a.redis)
	}

	store := memstore.New()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		store.Run(ctx)
	}()
	zap.L().Info("using in-memory session store")
	return store
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.closeResources()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) closeResources() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Error("can't close redis client", zap.Error(err))
		}
		a.redis = nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
