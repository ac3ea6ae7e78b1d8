package ea

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"
	"github.com/valyala/bytebufferpool"

	"github.com/chelstats/chelstats/internal/platform/logging"
	"github.com/chelstats/chelstats/internal/platform/resilience"
)

var errEATransient = crerr.New("ea proxy transient failure")

// ClubMatch is one entry of the proxy's recent-matches feed for a club.
type ClubMatch struct {
	MatchID   string                          `json:"matchId"`
	Timestamp int64                           `json:"timestamp"`
	Clubs     map[string]Club                 `json:"clubs"`
	Players   map[string]map[string]RawPlayer `json:"players"`
}

// Payload converts a feed entry into an importable match payload.
func (m ClubMatch) Payload() MatchPayload {
	return MatchPayload{
		Clubs:   m.Clubs,
		Players: m.Players,
	}
}

type ClientConfig struct {
	BaseURL        string
	MatchType      string
	Timeout        time.Duration
	MaxRetries     int
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches club match statistics from the EA proxy API.
type Client struct {
	client         *http.Client
	baseURL        string
	matchType      string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	matchType := strings.TrimSpace(cfg.MatchType)
	if matchType == "" {
		matchType = "club_private"
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		client:         &http.Client{Timeout: timeout},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		matchType:      matchType,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// RecentClubMatches returns the proxy's recent matches for one EA club,
// newest first.
func (c *Client) RecentClubMatches(ctx context.Context, eaClubID string) ([]ClubMatch, error) {
	eaClubID = strings.TrimSpace(eaClubID)
	if eaClubID == "" {
		return nil, fmt.Errorf("ea club id is required")
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("ea proxy base url is not configured")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "ea proxy circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("ea proxy is temporarily unavailable: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/clubs/%s/matches?matchType=%s", c.baseURL, url.PathEscape(eaClubID), url.QueryEscape(c.matchType))

	var matches []ClubMatch
	var lastErr error
	attempts := c.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = attempts
				continue
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		matches, lastErr = c.fetchMatches(ctx, endpoint)
		if lastErr == nil {
			break
		}
		if !crerr.Is(lastErr, errEATransient) {
			break
		}
		c.logger.WarnContext(ctx, "ea proxy fetch retry",
			"ea_club_id", eaClubID,
			"attempt", attempt+1,
			"error", lastErr,
		)
	}

	if c.circuitEnabled {
		if lastErr != nil && crerr.Is(lastErr, errEATransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return matches, nil
}

// RecentMatchesForClubs fetches both sides' feeds concurrently. A failed side
// is reported in the error map; the other side's matches still come back.
func (c *Client) RecentMatchesForClubs(ctx context.Context, eaClubIDs ...string) (map[string][]ClubMatch, map[string]error) {
	var mu sync.Mutex
	out := make(map[string][]ClubMatch, len(eaClubIDs))
	errs := make(map[string]error)

	var wg conc.WaitGroup
	for _, clubID := range eaClubIDs {
		clubID := clubID
		wg.Go(func() {
			matches, err := c.RecentClubMatches(ctx, clubID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[clubID] = err
				return
			}
			out[clubID] = matches
		})
	}
	wg.Wait()

	return out, errs
}

func (c *Client) fetchMatches(ctx context.Context, endpoint string) ([]ClubMatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build ea proxy request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, crerr.Mark(fmt.Errorf("ea proxy request: %w", err), errEATransient)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, 8<<20)); err != nil {
		return nil, crerr.Mark(fmt.Errorf("read ea proxy response: %w", err), errEATransient)
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, crerr.Mark(fmt.Errorf("ea proxy status %d", resp.StatusCode), errEATransient)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ea proxy status %d: %s", resp.StatusCode, strings.TrimSpace(buf.String()))
	}

	var matches []ClubMatch
	if err := sonic.Unmarshal(buf.Bytes(), &matches); err != nil {
		return nil, fmt.Errorf("decode ea proxy response: %w", err)
	}
	return matches, nil
}
