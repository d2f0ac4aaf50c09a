// Package simpletxmanager is the txmanager counterpart for a plain
// *sql.DB connection, used when metrics are disabled.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/txmanager"
)

const maxSerializableRetries = 3

// TransactionManager executes functions within transactions on a plain
// *sql.DB connection.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over db.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction with bounded
// retries on serialization conflicts.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 1; attempt <= maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !txmanager.IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", txmanager.ErrBeginTx, err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	txCtx := dbmetrics.WithTx(ctx, wrapped)

	if err := fn(txCtx); err != nil {
		_ = wrapped.Rollback()
		return err
	}

	if err := wrapped.Commit(); err != nil {
		if txmanager.IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", txmanager.ErrCommit, err)
	}

	return nil
}
