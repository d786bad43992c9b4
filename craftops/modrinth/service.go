// Package modrinth talks to the Modrinth labrinth API to look up
// project versions and reconcile them against the pack's loader and
// game version.
package modrinth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// globalService ...
var globalService *Service

// GlobalService ...
func GlobalService() *Service {
	return globalService
}

// Service ...
type Service struct {
	url       string
	userAgent string

	client *http.Client
	log    *slog.Logger

	rateLimitReset time.Time
	mu             sync.Mutex
}

// NewService initializes the global service instance with the given
// logger, API base URL and User-Agent. Modrinth requires a
// descriptive User-Agent on every request.
func NewService(log *slog.Logger, url, userAgent string, timeout time.Duration) {
	if timeout <= 0 {
		timeout = requestTimeout
	}
	globalService = &Service{
		url:       url,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

const (
	maxRetries     = 3
	retryDelay     = 1 * time.Second
	requestTimeout = 10 * time.Second
)

var (
	ErrProjectNotFound = fmt.Errorf("project not found")
	ErrRateLimited     = fmt.Errorf("rate limited")
)

// Versions fetches every published version of the given project,
// newest first (API order).
func (s *Service) Versions(ctx context.Context, projectID string) ([]Version, error) {
	if err := s.checkRateLimit(); err != nil {
		return nil, err
	}

	var versions []Version
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * retryDelay)
		}

		reqCtx, cancel := context.WithTimeout(ctx, s.client.Timeout)
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fmt.Sprintf("%s/project/%s/version", s.url, projectID), nil)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		cancel()
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			if isTemporaryError(err) {
				continue
			}
			return nil, lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				lastErr = fmt.Errorf("failed to read response: %w", err)
				continue
			}
			if err = json.Unmarshal(body, &versions); err != nil {
				return nil, fmt.Errorf("failed to parse versions: %w", err)
			}

			s.log.Debug("fetched versions", "project", projectID, "count", len(versions))

			return versions, nil
		case http.StatusNotFound:
			resp.Body.Close()
			return nil, ErrProjectNotFound
		case http.StatusTooManyRequests:
			s.handleRateLimit(resp)
			resp.Body.Close()
			lastErr = ErrRateLimited
			continue
		default:
			code := resp.StatusCode
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status code: %d", code)
			if code >= 500 {
				continue
			}
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// checkRateLimit reports an error while a previously announced rate
// limit window is still active.
func (s *Service) checkRateLimit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.rateLimitReset) {
		return fmt.Errorf("%w until %v", ErrRateLimited, s.rateLimitReset)
	}
	return nil
}

// handleRateLimit records the reset time announced by the API. The
// X-Ratelimit-Reset header carries seconds until the window resets.
func (s *Service) handleRateLimit(resp *http.Response) {
	if header := resp.Header.Get("X-Ratelimit-Reset"); header != "" {
		if secs, err := strconv.Atoi(header); err == nil {
			s.mu.Lock()
			s.rateLimitReset = time.Now().Add(time.Duration(secs) * time.Second)
			s.mu.Unlock()
		}
	}
}

// isTemporaryError ...
func isTemporaryError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
