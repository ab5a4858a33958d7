package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/samandr77/microservices/staff/internal/livesync"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
)

var errSlowClient = errors.New("live client is not reading updates")

type LiveMessage struct {
	Type string `json:"type"`
	livesync.Update
}

// liveConn is the websocket side of a live job stream. Only writePump writes to conn.
type liveConn struct {
	conn   *websocket.Conn
	send   chan []byte
	cancel context.CancelFunc
}

func (c *liveConn) Publish(ctx context.Context, u livesync.Update) error {
	msg, err := json.Marshal(LiveMessage{Type: "jobs", Update: u})
	if err != nil {
		return err
	}

	select {
	case c.send <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		c.cancel()
		return errSlowClient
	}
}

// readPump drains client frames so that pongs and close frames are processed.
func (c *liveConn) readPump(ctx context.Context) {
	defer c.cancel()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "live connection closed", "error", err)
			}

			return
		}
	}
}

func (c *liveConn) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			err := c.conn.WriteMessage(websocket.TextMessage, msg)
			if err != nil {
				c.cancel()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			if err != nil {
				c.cancel()
				return
			}
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

			return
		}
	}
}

// LiveJobs godoc
// @Summary      Live job stream
// @Description  Websocket. Every message carries the full merged job list and the ids that are new since the previous one.
// @Tags         jobs
// @Param        access_token query string false "Session token when the Authorization header cannot be set"
// @Success      101 {object} LiveMessage
// @Failure      401 {object} ResponseError
// @Router       /jobs/live [get]
// @Security     BearerAuth
func (h *Handler) LiveJobs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade", "error", err)
		return
	}

	defer conn.Close()

	c := &liveConn{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		cancel: cancel,
	}

	written := make(chan struct{})

	go c.readPump(ctx)
	go func() {
		defer close(written)
		c.writePump(ctx)
	}()

	err = h.s.LiveJobs(ctx, c)
	if err != nil {
		slog.ErrorContext(ctx, "live jobs", "error", err)
	}

	cancel()
	<-written
}
