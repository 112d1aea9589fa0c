package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Config controls exponential backoff between retry attempts.
type Config struct {
	Initial time.Duration
	Max     time.Duration
	Retries int
	Factor  float64
}

// HTTPConfig returns the backoff settings used for LLM API calls.
func HTTPConfig() Config {
	return Config{
		Initial: 1 * time.Second,
		Max:     30 * time.Second,
		Retries: 3,
		Factor:  2.0,
	}
}

// Retryable reports whether a transport error is worth retrying.
// Context cancellation is never retried; the caller gave up.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		// NXDOMAIN is definitive; transient resolver failures are not.
		return !dnsErr.IsNotFound
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.EPIPE)
	}

	return false
}

// RetryableStatus reports whether an HTTP status code is worth retrying.
func RetryableStatus(code int) bool {
	switch {
	case code == http.StatusTooManyRequests:
		return true
	case code == http.StatusRequestTimeout:
		return true
	case code >= 500 && code < 600:
		return true
	}
	return false
}

// Do runs fn with exponential backoff until it succeeds, returns a
// non-retryable error or status, or the retry budget is spent. fn reports
// the HTTP status code of the attempt (0 when the request never left).
func Do(ctx context.Context, cfg Config, fn func() (int, error)) error {
	var lastErr error
	var lastStatus int
	interval := cfg.Initial

	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		statusCode, err := fn()
		lastStatus = statusCode
		lastErr = err

		if err == nil && statusCode >= 200 && statusCode < 300 {
			return nil
		}

		retry := false
		if err != nil {
			retry = Retryable(err)
		} else if statusCode > 0 {
			retry = RetryableStatus(statusCode)
		}

		if !retry {
			if err != nil {
				return fmt.Errorf("non-retryable error on attempt %d (status %d): %w", attempt+1, statusCode, err)
			}
			return fmt.Errorf("non-retryable status code %d on attempt %d", statusCode, attempt+1)
		}

		if attempt == cfg.Retries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		interval = time.Duration(float64(interval) * cfg.Factor)
		if interval > cfg.Max {
			interval = cfg.Max
		}
	}

	if lastErr != nil {
		return fmt.Errorf("max retries (%d) exceeded (status %d): %w", cfg.Retries, lastStatus, lastErr)
	}
	return fmt.Errorf("max retries (%d) exceeded with status code %d", cfg.Retries, lastStatus)
}
