package orderservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"go.uber.org/zap"
)

// DefaultProductName is used when a purchase request names no product.
const DefaultProductName = "Combo 10 Random Valorant Accounts"

const (
	defaultUnitCount = 10
	fiveUnitCount    = 5
	singleUnitCount  = 1
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
}

type Generator interface {
	Generate(count int) []domain.Account
}

type Service struct {
	repo      Repo
	generator Generator
	now       func() time.Time
}

func New(repo Repo, generator Generator) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		now:       time.Now,
	}
}

// UnitCount derives how many accounts a product label buys. A "1" anywhere
// in the label wins over a "5", so "Combo 10 ..." yields a single account.
func UnitCount(productName string) int {
	count := defaultUnitCount
	if strings.Contains(productName, "5") {
		count = fiveUnitCount
	}
	if strings.Contains(productName, "1") {
		count = singleUnitCount
	}
	return count
}

func (s *Service) Purchase(ctx context.Context, userID int, productName string) (*domain.Order, error) {
	count := UnitCount(productName)
	order := &domain.Order{
		UserID:      userID,
		ProductName: productName,
		Accounts:    s.generator.Generate(count),
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.Int("order_id", order.ID),
		zap.Int("user_id", userID),
		zap.Int("accounts", count),
	)
	return order, nil
}

// GetOrders returns the user's orders newest first; an empty slice when
// there are none.
func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
