package tr

import (
	"context"

	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier — общий интерфейс запросов pgx.Tx и pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// QuerierFromCtx возвращает транзакцию из контекста, если она есть,
// иначе — пул соединений. Позволяет репозиториям читать как внутри
// транзакции, так и вне её.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, err := TxFromCtx(ctx); err == nil {
		return tx
	}
	return pool
}
