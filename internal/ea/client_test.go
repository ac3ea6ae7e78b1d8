package ea

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chelstats/chelstats/internal/platform/resilience"
)

func TestClientRecentClubMatches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clubs/100/matches" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("matchType") != "club_private" {
			t.Errorf("unexpected matchType %q", r.URL.Query().Get("matchType"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"matchId":"ea-1","timestamp":1700000000,"clubs":{"100":{"goals":3}}}]`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	matches, err := client.RecentClubMatches(context.Background(), "100")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(matches) != 1 || matches[0].MatchID != "ea-1" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
	if matches[0].Clubs["100"].Goals.Int() != 3 {
		t.Fatalf("club goals = %d, want 3", matches[0].Clubs["100"].Goals.Int())
	}
}

func TestClientRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, MaxRetries: 2, Timeout: 2 * time.Second}, nil)
	if _, err := client.RecentClubMatches(context.Background(), "100"); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, MaxRetries: 3}, nil)
	if _, err := client.RecentClubMatches(context.Background(), "100"); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", calls.Load())
	}
}

func TestClientCircuitBreakerRejects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		MaxRetries: 0,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	if _, err := client.RecentClubMatches(context.Background(), "100"); err == nil {
		t.Fatal("expected first call to fail")
	}
	if _, err := client.RecentClubMatches(context.Background(), "100"); err == nil {
		t.Fatal("expected breaker to reject second call")
	}
}

func TestRecentMatchesForClubs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/clubs/200/matches" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"matchId":"ea-9"}]`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	matches, errs := client.RecentMatchesForClubs(context.Background(), "100", "200")

	if len(matches["100"]) != 1 {
		t.Fatalf("expected one match for club 100, got %d", len(matches["100"]))
	}
	if errs["200"] == nil {
		t.Fatal("expected error for club 200")
	}
}
