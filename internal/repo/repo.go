package repo

import (
	"github.com/GlebRadaev/g4market/internal/pg"
	orderrepo "github.com/GlebRadaev/g4market/internal/repo/order-repo"
	userrepo "github.com/GlebRadaev/g4market/internal/repo/user-repo"
	"github.com/GlebRadaev/g4market/internal/service/authservice"
	"github.com/GlebRadaev/g4market/internal/service/orderservice"
)

type Repositories struct {
	UserRepo  authservice.Repo
	OrderRepo orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:  userrepo.New(conn),
		OrderRepo: orderrepo.New(conn, txManager),
	}
}
