package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	readRetries   = 3
	readRetryBase = 50 * time.Millisecond
)

// withRetry runs a read operation again while its error is classified as
// [Retryable], backing off exponentially. Writes never go through it.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)
	backoff := retry.WithMaxRetries(readRetries, retry.NewExponential(readRetryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Int("attempt", attempt).Msg("retrying database read")
			return retry.RetryableError(err)
		}

		return err
	})
}
