package middleware

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

// GetRequestID возвращает ID запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

// AccessLog проставляет ID запроса и пишет строку лога на каждый запрос
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID))

			snoop := httpsnoop.CaptureMetrics(next, w, r)

			log.Info("HTTP %s %s - status=%d, duration_ms=%d, bytes=%d, request_id=%s",
				r.Method, r.URL.Path, snoop.Code, snoop.Duration.Milliseconds(), snoop.Written, requestID)
		})
	}
}

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID, _ := GetRequestID(r.Context())
					log.Error("Panic recovered: %v, method=%s, path=%s, request_id=%s\n%s",
						rec, r.Method, r.URL.Path, requestID, debug.Stack())

					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"внутренняя ошибка сервера"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
