package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/pkg/logger"
	"github.com/samandr77/microservices/staff/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))

	var gotReqID string

	mux := http.NewServeMux()
	mux.HandleFunc("/send", func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusAccepted)
		_, _ = fmt.Fprint(w, `{"data": []}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(nil),
	}

	ctx := logger.SetRequestID(context.Background(), "req-1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/send", strings.NewReader(`[]`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "req-1", gotReqID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var out, in map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &out))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &in))

	require.Equal(t, "outgoing request", out["msg"])
	require.Equal(t, "POST "+server.URL+"/send", out["request"])
	require.Equal(t, "incoming response", in["msg"])
	require.InDelta(t, float64(http.StatusAccepted), in["status"], 0)
}
