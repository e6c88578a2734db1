package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// txKey is the context key under which the active transaction is stored.
type txKey struct{}

// Querier is the common subset of pgxpool.Pool and pgx.Tx the repositories
// use. Repositories obtain one via GetQuerier and never care whether they run
// inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager runs functions inside database transactions. The active
// transaction travels in the context so that nested service calls join it
// instead of opening their own.
type TxManager struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// NewTxManager creates a transaction manager backed by the given pool.
func NewTxManager(pool *Pool) *TxManager {
	return &TxManager{
		pool:   pool.Unwrap(),
		tracer: otel.Tracer("storage.postgres"),
	}
}

// GetQuerier returns the transaction bound to ctx, or the pool when none is.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return m.pool
}

// RunInTransaction executes fn inside a transaction. If ctx already carries
// one, fn joins it and commit/rollback stays with the outermost caller.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// ReadOnly executes fn inside a read-only transaction.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	ctx, span := m.tracer.Start(ctx, "postgres.transaction",
		trace.WithAttributes(
			attribute.Bool("db.tx.read_only", opts.AccessMode == pgx.ReadOnly),
		),
	)
	defer span.End()

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "begin failed")
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				logger.Error(ctx, "rollback after panic failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction rolled back")
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			logger.Error(ctx, "transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		return fmt.Errorf("commit transaction: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
