package booking

import (
	"context"
	"database/sql"

	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so repositories work both
// on the raw pool and on the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
