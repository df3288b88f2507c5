package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

var (
	errUnavailable = &erpbrain.QueryError{Status: 503, Body: "service unavailable"}
	errBadSQL      = &erpbrain.QueryError{Status: 400, Body: "ORA-00933: SQL command not properly ended"}
)

// flakyQuery fails with failErr until it has been called succeedOn times.
type flakyQuery struct {
	calls     int
	succeedOn int
	failErr   error
}

func (f *flakyQuery) run(ctx context.Context) error {
	f.calls++
	if f.calls < f.succeedOn {
		return f.failErr
	}
	return nil
}

func fastBackoff(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_Execute_SuccessOnFirstAttempt(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3))
	op := &flakyQuery{succeedOn: 1}

	if err := executor.Execute(context.Background(), op.run); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if op.calls != 1 {
		t.Errorf("Expected 1 call, got %d", op.calls)
	}
}

func TestExecutor_Execute_SuccessAfterRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5))
	op := &flakyQuery{succeedOn: 4, failErr: errUnavailable}

	if err := executor.Execute(context.Background(), op.run); err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if op.calls != 4 {
		t.Errorf("Expected 4 calls, got %d", op.calls)
	}
}

func TestExecutor_Execute_FatalErrorNoRetry(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5))
	op := &flakyQuery{succeedOn: 99, failErr: errBadSQL}

	err := executor.Execute(context.Background(), op.run)

	var qe *erpbrain.QueryError
	if !errors.As(err, &qe) || qe.Status != 400 {
		t.Fatalf("Expected the 400 QueryError, got %v", err)
	}
	if op.calls != 1 {
		t.Errorf("Expected 1 call for a fatal error, got %d", op.calls)
	}
}

func TestExecutor_Execute_ExhaustedRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3))
	op := &flakyQuery{succeedOn: 99, failErr: errUnavailable}

	err := executor.Execute(context.Background(), op.run)

	if err != errUnavailable {
		t.Fatalf("Expected the last transient error, got %v", err)
	}
	if op.calls != 4 {
		t.Errorf("Expected 1 initial call + 3 retries, got %d", op.calls)
	}
}

func TestExecutor_Execute_NoRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(0))
	op := &flakyQuery{succeedOn: 99, failErr: errUnavailable}

	if err := executor.Execute(context.Background(), op.run); err == nil {
		t.Fatal("Expected error, got nil")
	}
	if op.calls != 1 {
		t.Errorf("Expected a single call, got %d", op.calls)
	}
}

func TestExecutor_Execute_TransientThenFatal(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5))

	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errUnavailable
		}
		return errBadSQL
	})

	if err != errBadSQL {
		t.Errorf("Expected fatal error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestExecutor_Execute_ContextCancellation(t *testing.T) {
	strategy := NewExponentialBackoff(10, WithInitialDelay(time.Second))
	executor := NewExecutor(NewHTTPErrorClassifier(), strategy)

	ctx, cancel := context.WithCancel(context.Background())
	op := &flakyQuery{succeedOn: 99, failErr: errUnavailable}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := executor.Execute(ctx, op.run)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if op.calls != 1 {
		t.Errorf("Expected cancellation during the first wait, got %d calls", op.calls)
	}
}

func TestExecutor_WithOnRetry(t *testing.T) {
	var attempts []int
	var delays []time.Duration

	base := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3))
	executor := base.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		if err == nil {
			t.Error("Expected the failing error in the callback")
		}
		attempts = append(attempts, attempt)
		delays = append(delays, delay)
	})

	op := &flakyQuery{succeedOn: 4, failErr: errUnavailable}
	if err := executor.Execute(context.Background(), op.run); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	wantDelays := []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}
	if len(attempts) != 3 {
		t.Fatalf("Expected 3 callbacks, got %d", len(attempts))
	}
	for i := range attempts {
		if attempts[i] != i || delays[i] != wantDelays[i] {
			t.Errorf("Callback %d: attempt %d delay %v", i, attempts[i], delays[i])
		}
	}

	if base.onRetry != nil {
		t.Error("WithOnRetry must not modify the receiver")
	}
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil classifier")
		}
	}()
	NewExecutor(nil, fastBackoff(1))
}
