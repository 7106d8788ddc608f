package repositories

import (
	"context"
	"fmt"

	"inventory-system/pkg/contextkeys"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) TxManagerInterface {
	return &TxManager{pool: pool}
}

// RunInTransaction выполняет fn в рамках одной транзакции. Транзакция
// кладется в контекст, и все вызовы репозиториев через txCtx автоматически
// выполняются внутри нее.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("ошибка при коммите транзакции: %w", err)
			}
		}
	}()

	txCtx := context.WithValue(ctx, contextkeys.TxKey, tx)
	err = fn(txCtx)

	return err
}
