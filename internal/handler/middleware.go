package handler

import (
	"math"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	msgIncoming = "Incoming request"
	msgOutgoing = "Outgoing response"
	msgFailed   = "Request failed"

	unknownClientIP = "unknown"
)

// ErrorHandlerFunc is an HTTP handler that reports failure by returning an error.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request) error

// RequestLogger writes an "Incoming request" record before the wrapped handler runs,
// and exactly one "Outgoing response" or "Request failed" record after it finishes.
// It never changes the request, the response or the error it observes.
type RequestLogger struct {
	log *zap.Logger
}

func NewRequestLogger(log *zap.Logger) *RequestLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &RequestLogger{log: log}
}

// Handler is the net/http form of the middleware. A panic in next is the failure
// branch: it is logged and re-panicked with the same value.
func (rl *RequestLogger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = rl.serve(w, r, func(w http.ResponseWriter) error {
			next.ServeHTTP(w, r)
			return nil
		})
	})
}

// HandlerFunc is the error-returning form of the middleware. A non-nil error from next
// is logged and returned as is.
func (rl *RequestLogger) HandlerFunc(next ErrorHandlerFunc) ErrorHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		return rl.serve(w, r, func(w http.ResponseWriter) error {
			return next(w, r)
		})
	}
}

func (rl *RequestLogger) serve(w http.ResponseWriter, r *http.Request, next func(http.ResponseWriter) error) error {
	start := time.Now()
	method := r.Method
	url := fullURL(r)

	rl.log.Info(msgIncoming,
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("query_params", queryParams(r)),
		zap.String("client_ip", clientIP(r)),
		zap.String("timestamp", start.UTC().Format(time.RFC3339Nano)),
	)

	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

	returned := false
	defer func() {
		if returned {
			return
		}
		// Either a panic or runtime.Goexit; recover returns nil only for the latter.
		rec := recover()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("url", url),
			zap.Float64("duration_ms", durationMs(time.Since(start))),
		}
		if rec == nil {
			rl.log.Error(msgFailed, fields...)
			return
		}
		rl.log.Error(msgFailed, append(fields, zap.Any("error", rec))...)
		panic(rec)
	}()

	err := next(ww)
	returned = true

	if err != nil {
		rl.log.Error(msgFailed,
			zap.String("method", method),
			zap.String("url", url),
			zap.Float64("duration_ms", durationMs(time.Since(start))),
			zap.Error(err),
		)
		return err
	}

	rl.log.Info(msgOutgoing,
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode(ww)),
		zap.Float64("duration_ms", durationMs(time.Since(start))),
	)
	return nil
}

// statusCode reports what net/http sent: a handler that never called WriteHeader
// or Write still produced a 200.
func statusCode(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// durationMs converts d to milliseconds rounded to two decimals.
func durationMs(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Millisecond)*100) / 100
}

func fullURL(r *http.Request) string {
	if r.URL.IsAbs() {
		return r.URL.String()
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// queryParams flattens the query string; for repeated keys the last value wins.
func queryParams(r *http.Request) map[string]string {
	q := r.URL.Query()
	params := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			params[k] = vs[len(vs)-1]
		}
	}
	return params
}

func clientIP(r *http.Request) string {
	if r.RemoteAddr == "" {
		return unknownClientIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	if host == "" {
		return unknownClientIP
	}
	return host
}
