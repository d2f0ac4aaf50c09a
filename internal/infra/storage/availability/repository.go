package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"coach_id",
	"start_time",
	"end_time",
	"created_at",
}

// Repository persists coach-declared availability intervals. Intervals are
// create/delete only; edits are modeled as withdraw-and-redeclare.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new availability interval.
func (r *Repository) Create(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coach_availability").
		Columns(
			"coach_id",
			"start_time",
			"end_time",
		).
		Values(
			interval.CoachID,
			interval.StartTime,
			interval.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&interval.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	interval.CreatedAt = createdAt.Time

	return interval, nil
}

// Delete removes an availability interval belonging to the given coach.
func (r *Repository) Delete(ctx context.Context, coachID, intervalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coach_availability").
		Where(squirrel.Eq{"id": intervalID}).
		Where(squirrel.Eq{"coach_id": coachID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}

	return nil
}

// ListInWindow fetches the coach's availability intervals intersecting
// [from, to), ordered by start time. No sorting or overlap guarantees
// beyond that: intervals are coach-entered ad hoc and may overlap.
func (r *Repository) ListInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("coach_availability").
		Where(squirrel.Eq{"coach_id": coachID}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// GetByID fetches a single interval belonging to the given coach.
func (r *Repository) GetByID(ctx context.Context, coachID, intervalID int64) (*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("coach_availability").
		Where(squirrel.Eq{"id": intervalID}).
		Where(squirrel.Eq{"coach_id": coachID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var interval domain.AvailabilityInterval
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&interval.ID,
		&interval.CoachID,
		&interval.StartTime,
		&interval.EndTime,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIntervalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan interval: %v", ErrScanRow, err)
	}

	interval.StartTime = interval.StartTime.UTC()
	interval.EndTime = interval.EndTime.UTC()
	interval.CreatedAt = createdAt.Time

	return &interval, nil
}

func scanIntervals(rows *sql.Rows) ([]*domain.AvailabilityInterval, error) {
	intervals := make([]*domain.AvailabilityInterval, 0)

	for rows.Next() {
		var interval domain.AvailabilityInterval
		var createdAt sql.NullTime

		err := rows.Scan(
			&interval.ID,
			&interval.CoachID,
			&interval.StartTime,
			&interval.EndTime,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanIntervals - scan row: %v", ErrScanRow, err)
		}

		interval.StartTime = interval.StartTime.UTC()
		interval.EndTime = interval.EndTime.UTC()
		interval.CreatedAt = createdAt.Time

		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}
