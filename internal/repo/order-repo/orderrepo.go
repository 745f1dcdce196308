package orderrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/GlebRadaev/g4market/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// FindOrdersByUserID returns the user's orders, newest first.
func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, product_name, accounts_data, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Save inserts the order together with its accounts and sets order.ID.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (user_id, product_name, accounts_data, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	accountsData, err := domain.EncodeAccounts(order.Accounts)
	if err != nil {
		zap.L().Error("can't encode order accounts", zap.Error(err))
		return err
	}

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, order.UserID, order.ProductName, accountsData, order.CreatedAt).Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order        domain.Order
		accountsData string
	)
	if err := row.Scan(&order.ID, &order.UserID, &order.ProductName, &accountsData, &order.CreatedAt); err != nil {
		return domain.Order{}, err
	}
	accounts, err := domain.DecodeAccounts(accountsData)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %d: %w", order.ID, err)
	}
	order.Accounts = accounts
	return order, nil
}
