package schemasync

import (
	"context"
	"time"

	"github.com/vvka-141/erpbrain/internal/retry"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// RetryingQuerier retries transient query failures through a retry.Executor.
type RetryingQuerier struct {
	next     Querier
	executor *retry.Executor
}

// WithRetries wraps q so that transient failures (5xx, 429, network
// errors) are retried as strategy allows. A strategy without retries
// returns q unchanged.
func WithRetries(q Querier, strategy erpbrain.BackoffStrategy, logger erpbrain.Logger) Querier {
	attempts := strategy.MaxAttempts()
	if attempts == 0 {
		return q
	}

	executor := retry.NewExecutor(retry.NewHTTPErrorClassifier(), strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Warn("Retrying query (%d/%d) in %v: %v", attempt+1, attempts, delay.Round(time.Millisecond), err)
		})

	return &RetryingQuerier{next: q, executor: executor}
}

// Query runs the wrapped query under the retry policy.
func (r *RetryingQuerier) Query(ctx context.Context, sql string) ([]erpbrain.Row, error) {
	var rows []erpbrain.Row
	err := r.executor.Execute(ctx, func(ctx context.Context) error {
		var err error
		rows, err = r.next.Query(ctx, sql)
		return err
	})
	return rows, err
}
