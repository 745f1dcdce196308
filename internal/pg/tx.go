package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type TxManager struct {
	pool Pool
}

func NewTXManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn inside a transaction. Nested calls join the outer
// transaction. The transaction is rolled back if fn errors or panics.
func (m *TxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				zap.L().Error("can't rollback tx", zap.Error(rbErr))
				err = errors.Join(err, rbErr)
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}
