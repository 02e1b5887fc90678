package server

import (
	"net/http"
	"time"

	"fjacquet/extrato-classifier/internal/logging"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request through logger.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("Request handled",
					logging.Field{Key: logging.FieldRequestID, Value: middleware.GetReqID(r.Context())},
					logging.Field{Key: logging.FieldMethod, Value: r.Method},
					logging.Field{Key: logging.FieldRoute, Value: r.URL.Path},
					logging.Field{Key: logging.FieldStatus, Value: ww.Status()},
					logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
