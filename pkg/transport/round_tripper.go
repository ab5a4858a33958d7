package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/staff/pkg/logger"
)

// LoggingRoundTripper logs outgoing requests and forwards the request id.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (t *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	target := fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())

	slog.InfoContext(ctx, "outgoing request", "request", target)

	started := time.Now()

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		slog.WarnContext(ctx, "request failed", "request", target, "error", err)
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", target, "status", resp.StatusCode,
		"took_ms", time.Since(started).Milliseconds())

	return resp, nil
}
