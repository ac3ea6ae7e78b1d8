package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(2, time.Minute, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker must allow: %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	if err := b.Allow(); err == nil {
		t.Fatal("expected open breaker to reject")
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state = %s, want open", got)
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	base := time.Now()
	b.now = func() time.Time { return base }

	b.RecordFailure()
	if err := b.Allow(); err == nil {
		t.Fatal("expected rejection while open")
	}

	b.now = func() time.Time { return base.Add(20 * time.Millisecond) }
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe slot after cooldown: %v", err)
	}
	b.RecordSuccess()

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed after successful probe", got)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	base := time.Now()
	b.now = func() time.Time { return base }

	b.RecordFailure()
	b.now = func() time.Time { return base.Add(20 * time.Millisecond) }
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe slot: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); err == nil {
		t.Fatal("expected reopened breaker to reject")
	}
}
