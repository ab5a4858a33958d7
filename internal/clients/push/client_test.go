package push_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/internal/clients/push"
	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/pkg/config"
)

func TestClient_Send(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		chunks []int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var in []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		mu.Lock()
		chunks = append(chunks, len(in))
		mu.Unlock()

		data := make([]map[string]any, 0, len(in))
		for _, m := range in {
			require.Equal(t, "New job", m["title"])
			require.Equal(t, "high", m["priority"])

			if m["to"] == "ExponentPushToken[gone]" {
				data = append(data, map[string]any{
					"status":  "error",
					"message": "not registered",
					"details": map[string]any{"error": "DeviceNotRegistered"},
				})

				continue
			}

			data = append(data, map[string]any{"status": "ok", "id": fmt.Sprint(m["to"])})
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	t.Cleanup(server.Close)

	client := push.NewClient(config.Push{
		GatewayURL:    server.URL,
		AccessToken:   "secret",
		Timeout:       5 * time.Second,
		RetryAttempts: 0,
	})

	to := make([]string, 0, 150)
	for i := range 149 {
		to = append(to, fmt.Sprintf("ExponentPushToken[%d]", i))
	}

	to = append(to, "ExponentPushToken[gone]")

	tickets, err := client.Send(context.Background(), entity.PushMessage{
		To:       to,
		Title:    "New job",
		Body:     "Turnover clean",
		Priority: "high",
	})
	require.NoError(t, err)
	require.Equal(t, []int{100, 50}, chunks)
	require.Len(t, tickets, 150)

	require.Equal(t, "ExponentPushToken[0]", tickets[0].Token)
	require.Equal(t, entity.PushTicketOK, tickets[0].Status)

	last := tickets[149]
	require.Equal(t, "ExponentPushToken[gone]", last.Token)
	require.Equal(t, entity.PushTicketError, last.Status)
	require.Equal(t, entity.PushErrorDeviceNotRegistered, last.Details.Error)
}

func TestClient_SendErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"VALIDATION_ERROR","message":"bad"}]}`))
	}))
	t.Cleanup(server.Close)

	client := push.NewClient(config.Push{GatewayURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Send(context.Background(), entity.PushMessage{})
	require.ErrorIs(t, err, entity.ErrNoRecipients)

	tickets, err := client.Send(context.Background(), entity.PushMessage{To: []string{"ExponentPushToken[1]"}})
	require.Error(t, err)
	require.Empty(t, tickets)
}
