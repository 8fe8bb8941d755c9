// Package xpgx glues squirrel builders to pgx: services pass Sqlizers around
// and never see SQL strings or args.
package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Pool {
	return &Pool{db: db}
}

func (p *Pool) Close() {
	p.db.Close()
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.db.Exec(ctx, sql, args...)
}

func (p *Pool) Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.db.Query(ctx, sql, args...)
}

// Select runs the query and scans every row into T by db tag.
func Select[T any](ctx context.Context, p *Pool, query sq.Sqlizer) ([]T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Get runs the query and scans exactly one row into T. pgx.ErrNoRows when the
// result is empty.
func Get[T any](ctx context.Context, p *Pool, query sq.Sqlizer) (T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
}
