package store

import (
	"context"
	"fmt"
)

// selectAll runs a read query with retries and scans every row into T by
// its db tags. The result is never nil.
func selectAll[T any](ctx context.Context, db *DB, query string, args []any) ([]T, error) {
	rows := make([]T, 0)

	err := db.withRetry(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}

// execAffected runs a write statement once and reports the affected rows.
func execAffected(ctx context.Context, db *DB, query string, args []any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
