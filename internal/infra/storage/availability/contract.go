package availability

import (
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so the repository works
// both on the raw pool and on the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
