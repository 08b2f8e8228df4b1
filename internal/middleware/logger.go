package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/PauloHFS/goth-paginator/internal/logging"
	"github.com/PauloHFS/goth-paginator/internal/metrics"
	"github.com/PauloHFS/goth-paginator/internal/routes"
	"github.com/google/uuid"
)

const maxRequestIDLength = 64

var knownRoutes = map[string]bool{
	routes.Home:           true,
	routes.Pagination:     true,
	routes.PaginationJSON: true,
	routes.Health:         true,
	routes.Metrics:        true,
}

// routeLabel keeps the metric label set bounded.
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx, event := logging.NewEventContext(r.Context())

		event.Add(
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r.WithContext(ctx))

		duration := time.Since(start)

		event.Add(
			slog.Int("status", rw.status),
			slog.Int("size", rw.size),
			durationMS(duration),
		)

		// Prometheus Metrics
		metrics.HttpRequestsTotal.WithLabelValues(routeLabel(r.URL.Path), r.Method, strconv.Itoa(rw.status)).Inc()

		level := slog.LevelInfo
		switch {
		case rw.status >= 500:
			level = slog.LevelError
		case rw.status >= 400:
			level = slog.LevelWarn
		}

		logging.Get().Log(ctx, level, "request completed", event.Attrs()...)
	})
}

func durationMS(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Nanoseconds())/1e6)
}
