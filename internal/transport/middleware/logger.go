package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/pkg/ctxutil"
)

// probeRoutes are polled by orchestrators and logged at debug level only.
var probeRoutes = map[string]bool{
	"GET /live":    true,
	"GET /ready":   true,
	"GET /metrics": true,
}

// Logger logs each finished request. Anonymous requests carry no user_id.
// Routes are resolved through CaptureRoute like in Metrics.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r, slot := withRouteSlot(r)

			next.ServeHTTP(sw, r)

			route := routeLabel(slot, r)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", route),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if userID, _ := ctxutil.UserIDFromCtx(r.Context()); userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			logger.LogAttrs(r.Context(), requestLevel(route, sw.status), "http.request", attrs...)
		})
	}
}

func requestLevel(route string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case probeRoutes[route]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter captures the response status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
