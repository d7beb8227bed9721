package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"agenthub/pkg/logger"
	"agenthub/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// statusRecorder captures the status code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP returns the originating client address, preferring the
// X-Forwarded-For and X-Real-IP headers set by proxies.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// "client, proxy1, proxy2"
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// RequestID returns the id assigned to the current request, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// WithLogger injects a request-scoped logger and request id into the context,
// echoes the id back in the response, and after the handler finishes writes
// an access log line and records the request duration. Server errors are
// logged at warn level.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String("requestID", requestID))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		metrics.ObserveHTTP(r.Method, rec.status, elapsed)

		log := logger.Info
		if rec.status >= http.StatusInternalServerError {
			log = logger.Warn
		}
		log(ctx, "access",
			zap.Int("status", rec.status),
			zap.Duration("latency", elapsed),
			zap.String("clientIP", GetClientIP(r)),
			zap.String("userAgent", r.UserAgent()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	})
}
