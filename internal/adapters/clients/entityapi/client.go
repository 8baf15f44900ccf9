// Package entityapi is the outbound adapter for a remote validated-entities
// service. It speaks the same HTTP API that internal/adapters/http serves and
// maps its Problem Details rejections back to domain errors.
package entityapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
	"github.com/jsamuelsen11/validated-entities/internal/platform/httpclient"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntityClient  = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements [ports.EntityClient] on top of [httpclient.Client], which
// supplies circuit breaking, retry, rate limiting, and tracing for every call.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// NewClient creates a Client. The httpclient's BaseURL should point at the
// remote service root (e.g. "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: client,
		req:  newRequester(client, logger),
	}
}

// Construct sends POST /api/v1/types/{type}/entities. A rejected value comes
// back as a *domain.ValidationError; an unknown type as domain.ErrNotFound.
func (c *Client) Construct(ctx context.Context, typeName string, values map[string]any) (*ports.RemoteEntity, error) {
	path := fmt.Sprintf("/api/v1/types/%s/entities", url.PathEscape(typeName))

	var dto entityDTO
	if err := c.req.post(ctx, path, http.StatusCreated, constructRequestDTO{Values: values}, &dto); err != nil {
		return nil, err
	}
	return toRemoteEntity(&dto), nil
}

// CheckField sends POST /api/v1/types/{type}/fields/{field}/check and returns
// the rule that accepted value.
func (c *Client) CheckField(ctx context.Context, typeName, field string, value any) (schema.Rule, error) {
	path := fmt.Sprintf("/api/v1/types/%s/fields/%s/check",
		url.PathEscape(typeName), url.PathEscape(field))

	var dto checkFieldResponseDTO
	if err := c.req.post(ctx, path, http.StatusOK, checkFieldRequestDTO{Value: value}, &dto); err != nil {
		return schema.RuleNone, err
	}
	return toRule(&dto), nil
}

// Name returns the health registry identifier of the remote service.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the remote service's availability from the circuit
// breaker state without making a network call.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// unavailable tags transport failures and breaker rejections with
// domain.ErrUnavailable. Context errors pass through unchanged.
func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
