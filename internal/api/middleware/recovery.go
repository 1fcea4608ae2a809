package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/api/apierr"
)

// Recovery creates panic recovery middleware returning JSON error
// responses on panic.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic in http handler",
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
					)
					apierr.WriteError(w, apierr.NewInternalError())
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
