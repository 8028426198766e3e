package recoverer

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/http/handlers/response"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
)

// New returns a middleware that turns a panic in a handler into a 500
// response carrying the panic message. Panics are reported to Sentry when
// a client is bound to the current hub.
func New(log logging.Logger) func(http.Handler) http.Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(r)
				hub.RecoverWithContext(ctx, rec)

				log.Error(
					ctx,
					"Panic while serving request.",
					logging.Entry("panic", rec),
					logging.Entry("path", r.URL.Path),
					logging.Entry("stack", string(debug.Stack())),
				)
				response.RenderError(rw, fmt.Sprint(rec), http.StatusInternalServerError)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
