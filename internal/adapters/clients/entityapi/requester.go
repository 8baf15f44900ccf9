package entityapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/validated-entities/internal/platform/httpclient"
)

// requester owns one JSON exchange: encode, send through the resilient
// client, check the status, decode or translate.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	return &requester{client: client, logger: logger}
}

// post sends in as JSON and decodes the reply into out when the server
// answers want. Other statuses become domain errors via TranslateHTTPError.
func (r *requester) post(ctx context.Context, path string, want int, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return r.exchange(req, want, out)
}

func (r *requester) exchange(req *http.Request, want int, out any) error {
	ctx := req.Context()
	log := r.logger.With(slog.String("method", req.Method), slog.String("path", req.URL.Path))

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				log.WarnContext(ctx, "closing response body", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != want:
		// Retries exhausted on a 5xx still hand back the last response,
		// whose problem body says more than the retry error.
		log.WarnContext(ctx, "remote rejected request",
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		log.ErrorContext(ctx, "remote call failed", slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, unavailable(err))
	case out == nil:
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", req.Method, req.URL.Path, err)
	}
	if err := decodeJSON(data, out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
