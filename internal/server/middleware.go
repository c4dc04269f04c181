package server

import (
	"net/http"
	"time"

	errx "github.com/HKYM39/my-recipe-agents-chat/internal/core/error"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogging emits one structured line per request.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		logx.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// recovery converts a handler panic into the generic 500 envelope. The panic
// value stays in the logs; callers only ever see the safe message.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logx.Error().
					Interface("panic", rec).
					Str("path", req.URL.Path).
					Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
