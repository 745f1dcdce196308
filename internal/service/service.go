package service

import (
	"time"

	"github.com/GlebRadaev/g4market/internal/handlers/auth"
	"github.com/GlebRadaev/g4market/internal/handlers/orders"
	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/GlebRadaev/g4market/pkg/accountgen"

	pkgauth "github.com/GlebRadaev/g4market/pkg/auth"

	"github.com/GlebRadaev/g4market/internal/repo"
	authservice "github.com/GlebRadaev/g4market/internal/service/authservice"
	orderservice "github.com/GlebRadaev/g4market/internal/service/orderservice"
)

type Services struct {
	AuthService  auth.Service
	OrderService orders.Service
}

func New(repo *repo.Repositories, sessions session.Store, secretKey string, sessionTTL time.Duration) *Services {
	orderService := orderservice.New(repo.OrderRepo, accountgen.New())
	authService := authservice.New(repo.UserRepo, sessions, &pkgauth.HashService{}, pkgauth.NewJWTService(secretKey), sessionTTL)

	return &Services{
		AuthService:  authService,
		OrderService: orderService,
	}
}
