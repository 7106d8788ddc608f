package repositories

import (
	"context"

	"inventory-system/pkg/contextkeys"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier — общий интерфейс для *pgxpool.Pool и pgx.Tx, чтобы методы
// репозиториев одинаково работали внутри и вне транзакции.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// queryEngine выбирает исполнителя запроса: транзакцию из контекста,
// если она там есть, иначе пул.
func queryEngine(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(contextkeys.TxKey).(pgx.Tx); ok && tx != nil {
		return tx
	}
	return pool
}
