package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

// jitter spreads each backoff delay by up to 25% either way.
const jitter = 0.25

// StatusError reports a retryable status that persisted through every attempt.
type StatusError struct {
	Peer       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Peer)
}

type retryPolicy struct {
	attempts uint
	initial  time.Duration
	max      time.Duration
	factor   float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts: uint(max(cfg.MaxAttempts, 1)),
		initial:  cfg.InitialInterval,
		max:      cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     p.initial,
		RandomizationFactor: jitter,
		Multiplier:          p.factor,
		MaxInterval:         p.max,
	}
}

// retryableStatus is true for 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// send performs up to p.attempts round trips, replaying the body each time.
// Transport errors other than context errors are retried.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := replayable(req)
	if err != nil {
		return nil, err
	}

	var pending *http.Response
	attempt := func() (*http.Response, error) {
		if pending != nil {
			discard(pending)
			pending = nil
		}

		rc, berr := body()
		if berr != nil {
			return nil, backoff.Permanent(berr)
		}
		try := req.Clone(ctx)
		try.Body = rc

		resp, err := c.http.Do(try)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, backoff.Permanent(err)
		case err != nil:
			return nil, err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		}

		pending = resp
		serr := &StatusError{Peer: c.peer, StatusCode: resp.StatusCode}
		if wait, ok := retryAfter(resp, c.retry.max); ok {
			return resp, errors.Join(serr, &backoff.RetryAfterError{Duration: wait})
		}
		return resp, serr
	}

	resp, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(c.retry.backOff()),
		backoff.WithMaxTries(c.retry.attempts),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.peer),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		if resp != nil {
			discard(resp)
		}
		return nil, err
	}

	var serr *StatusError
	if errors.As(err, &serr) {
		return resp, serr
	}
	return nil, err
}

// replayable returns a factory for fresh copies of req's body.
func replayable(req *http.Request) (func() (io.ReadCloser, error), error) {
	switch {
	case req.Body == nil || req.Body == http.NoBody:
		return func() (io.ReadCloser, error) { return http.NoBody, nil }, nil
	case req.GetBody != nil:
		return req.GetBody, nil
	}

	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, nil
}

// retryAfter reads a Retry-After header given in seconds, capped at limit.
func retryAfter(resp *http.Response, limit time.Duration) (time.Duration, bool) {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, limit), true
}

// discard drains and closes resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
