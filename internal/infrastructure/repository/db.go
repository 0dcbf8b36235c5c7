package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niklvrr/DevProjects/internal/infrastructure/query"
)

// DB хранилище, которым пользуются репозитории. Его реализуют *pgxpool.Pool и pgx.Tx.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queryOne выполняет запрос и сканирует ровно одну строку в T по именам колонок
func queryOne[T any](ctx context.Context, q querier, sql string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, handleDBError(err)
	}
	res, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, handleDBError(err)
	}
	return res, nil
}

func queryAll[T any](ctx context.Context, q querier, sql string, args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, handleDBError(err)
	}
	res, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, handleDBError(err)
	}
	return res, nil
}

func execStatement[T any](ctx context.Context, q querier, stmt query.Statement) (*T, error) {
	return queryOne[T](ctx, q, stmt.SQL, stmt.Args...)
}
