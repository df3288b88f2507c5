// Package retry re-runs calls to the query service that fail with
// transient errors, waiting with exponential backoff between attempts.
//
//	executor := retry.NewExecutor(retry.NewHTTPErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    rows, err = client.Query(ctx, sql)
//	    return err
//	})
//
// HTTPErrorClassifier treats 5xx, 408, 429, timeouts and dropped
// connections as transient. ExponentialBackoff doubles the delay per
// attempt up to a cap, with jitter.
package retry
