package database

import (
	"context"
	"fmt"
)

// TxFunc runs inside a transaction. Repositories pick the transaction up from
// ctx through QuerierFromCtx.
type TxFunc func(ctx context.Context) error

// TxManager runs units of work atomically.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx begins a transaction, runs fn with it in ctx and commits.
// Any error or panic from fn rolls the whole unit back. A ctx that already
// carries a transaction is reused, so nested calls join the outer unit.
func (m *TxManager) RunInTx(ctx context.Context, fn TxFunc) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionResult wraps a function with a return value in RunInTx.
func WithTransactionResult[T any](ctx context.Context, m *TxManager, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := m.RunInTx(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
