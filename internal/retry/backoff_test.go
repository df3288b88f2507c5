package retry

import (
	"testing"
	"time"
)

func TestNewExponentialBackoff_Defaults(t *testing.T) {
	b := NewExponentialBackoff(3)

	if b.MaxAttempts() != 3 {
		t.Errorf("MaxAttempts = %d, want 3", b.MaxAttempts())
	}
	if b.InitialDelay() != 500*time.Millisecond {
		t.Errorf("InitialDelay = %v", b.InitialDelay())
	}
	if b.MaxDelay() != 10*time.Second {
		t.Errorf("MaxDelay = %v", b.MaxDelay())
	}
	if b.Multiplier() != 2.0 {
		t.Errorf("Multiplier = %v", b.Multiplier())
	}
	if b.Jitter() != 0.1 {
		t.Errorf("Jitter = %v", b.Jitter())
	}
}

func TestExponentialBackoff_NextDelay(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(time.Second),
		WithJitter(0),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second},
		{50, time.Second},
	}

	for _, tt := range tests {
		if got := b.NextDelay(tt.attempt); got != tt.want {
			t.Errorf("NextDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff_Multiplier(t *testing.T) {
	b := NewExponentialBackoff(3,
		WithInitialDelay(10*time.Millisecond),
		WithMultiplier(3),
		WithJitter(0),
	)

	if got := b.NextDelay(2); got != 90*time.Millisecond {
		t.Errorf("NextDelay(2) = %v, want 90ms", got)
	}
}

func TestExponentialBackoff_JitterBounds(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		want   time.Duration
	}{
		{"lowest", 0.0, 800 * time.Millisecond},
		{"middle", 0.5, time.Second},
		{"high", 0.75, 1100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewExponentialBackoff(1,
				WithInitialDelay(time.Second),
				WithJitter(0.2),
				WithJitterFunc(func() float64 { return tt.random }),
			)
			if got := b.NextDelay(0); got != tt.want {
				t.Errorf("NextDelay(0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExponentialBackoff_RandomJitterStaysInRange(t *testing.T) {
	b := NewExponentialBackoff(1, WithInitialDelay(time.Second), WithJitter(0.1))

	for i := 0; i < 100; i++ {
		d := b.NextDelay(0)
		if d < 900*time.Millisecond || d > 1100*time.Millisecond {
			t.Fatalf("NextDelay(0) = %v, outside +/-10%%", d)
		}
	}
}
