// Package txmanager runs functions inside database transactions on the
// metrics-wrapped connection, propagating the transaction through context.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
)

// maxSerializableRetries bounds the number of attempts for serializable
// transactions that fail with a serialization conflict.
const maxSerializableRetries = 3

var (
	// ErrBeginTx is returned when a transaction cannot be started.
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit is returned when a transaction cannot be committed.
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

// TransactionManager executes functions within transactions on a
// dbmetrics.DB connection.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a transaction manager over the wrapped DB.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
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

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying a
// bounded number of times when the database reports a serialization
// conflict (SQLSTATE 40001/40P01).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 1; attempt <= maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	return nil
}

// IsSerializationFailure reports whether err is a Postgres serialization
// conflict or deadlock, the retryable failure modes of DoSerializable.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
