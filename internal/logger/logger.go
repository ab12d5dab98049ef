// Package logger builds the process-wide zerolog logger and the
// HTTP request logging middleware.
package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rce-oj/dataserver/config"
	"github.com/rs/zerolog"
)

const serviceName = "rce-data"

// New returns the root logger configured from cfg. Console output is meant
// for local development, JSON for everything else.
func New(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = log.Error()
			case status >= 400:
				e = log.Warn()
			default:
				e = log.Info()
			}
			if requestID := middleware.GetReqID(r.Context()); requestID != "" {
				e = e.Str("request_id", requestID)
			}
			e.
				Dur("latency", time.Since(start)).
				Int("status", status).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("ip", r.RemoteAddr).
				Int("bytes", ww.BytesWritten()).
				Msg("API")
		})
	}
}
