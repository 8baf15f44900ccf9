package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
)

// errInternal is what clients see after a panic; details stay in the log.
var errInternal = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500
// problem+json response. If the handler already started the response, only
// the log entry is written. http.ErrAbortHandler is re-raised so net/http can
// abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errInternal)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
