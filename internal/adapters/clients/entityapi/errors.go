package entityapi

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
)

// maxBodyBytes bounds every response body the client reads.
const maxBodyBytes = 1 << 20

const (
	problemContentType = "application/problem+json"
	locationPrefix     = "body."
)

// statusSentinels maps client error statuses to the domain sentinel they
// carry. Any 5xx is domain.ErrUnavailable.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
}

// problem is the part of a problem details body the client reads.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
		Value    any    `json:"value"`
	} `json:"errors"`
}

// TranslateHTTPError turns an error response into a domain error. A field
// rejection becomes a *domain.ValidationError with the field name and value
// the server reported, so remote and local rejections compare equal.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.Detail, http.StatusText(resp.StatusCode))

	sentinel, known := statusSentinels[resp.StatusCode]
	switch {
	case known && errors.Is(sentinel, domain.ErrValidation) && len(p.Errors) > 0:
		first := p.Errors[0]
		return &domain.ValidationError{
			Field:  strings.TrimPrefix(first.Location, locationPrefix),
			Value:  normalizeValue(first.Value),
			Reason: first.Message,
		}
	case known:
		return fmt.Errorf("%s: %w", detail, sentinel)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// readProblem returns the zero problem unless the body is well-formed
// problem+json.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != problemContentType {
		return p
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil || decodeJSON(data, &p) != nil {
		return problem{}
	}
	return p
}

// decodeJSON keeps numbers as json.Number so normalizeValue can return
// integral values as int64.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}
