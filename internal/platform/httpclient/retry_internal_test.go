package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
)

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		assert.Equal(t, want, retryableStatus(code), "status %d", code)
	}
}

func TestRetryPolicy_BackOff(t *testing.T) {
	t.Parallel()

	p := newRetryPolicy(config.RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     300 * time.Millisecond,
		Multiplier:      2,
	})
	assert.Equal(t, uint(4), p.attempts)

	b := p.backOff()
	b.Reset()
	for _, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		d := b.NextBackOff()
		assert.GreaterOrEqual(t, d, time.Duration(float64(base)*(1-jitter)))
		assert.LessOrEqual(t, d, time.Duration(float64(base)*(1+jitter)))
	}
}

func TestRetryPolicy_AtLeastOneAttempt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(1), newRetryPolicy(config.RetryConfig{MaxAttempts: 0}).attempts)
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   time.Duration
		ok     bool
	}{
		{header: "", ok: false},
		{header: "soon", ok: false},
		{header: "-1", ok: false},
		{header: "0", want: 0, ok: true},
		{header: "2", want: 2 * time.Second, ok: true},
		{header: "600", want: 10 * time.Second, ok: true},
	}

	for _, tt := range tests {
		resp := &http.Response{Header: http.Header{}}
		if tt.header != "" {
			resp.Header.Set("Retry-After", tt.header)
		}
		got, ok := retryAfter(resp, 10*time.Second)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.want, got, "header %q", tt.header)
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	read := func(t *testing.T, next func() (io.ReadCloser, error)) string {
		t.Helper()
		rc, err := next()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}

	t.Run("no body", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodGet, "http://x", http.NoBody)
		next, err := replayable(req)
		require.NoError(t, err)
		assert.Empty(t, read(t, next))
	})

	t.Run("uses GetBody", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodPost, "http://x", bytes.NewReader([]byte("abc")))
		next, err := replayable(req)
		require.NoError(t, err)
		assert.Equal(t, "abc", read(t, next))
		assert.Equal(t, "abc", read(t, next))
	})

	t.Run("buffers plain reader", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodPost, "http://x", io.NopCloser(strings.NewReader("xyz")))
		next, err := replayable(req)
		require.NoError(t, err)
		assert.Equal(t, "xyz", read(t, next))
		assert.Equal(t, "xyz", read(t, next))
	})
}
