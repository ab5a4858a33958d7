package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/pkg/config"
	"github.com/samandr77/microservices/staff/pkg/transport"
)

// ChunkSize is the largest number of messages the gateway accepts per request.
const ChunkSize = 100

const defaultRetryWaitMax = time.Second * 5

type Client struct {
	client      *http.Client
	url         string
	accessToken string
}

func NewClient(cfg config.Push) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		client:      retryClient.StandardClient(),
		url:         cfg.GatewayURL,
		accessToken: cfg.AccessToken,
	}
}

type message struct {
	To        string         `json:"to"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Sound     string         `json:"sound,omitempty"`
	Priority  string         `json:"priority,omitempty"`
	ChannelID string         `json:"channelId,omitempty"`
}

type sendResponse struct {
	Data   []entity.PushTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Send delivers msg to every token in msg.To, one gateway message per token, in chunks
// of ChunkSize. Tickets of chunks that went through are returned even when another
// chunk failed.
func (c *Client) Send(ctx context.Context, msg entity.PushMessage) ([]entity.PushTicket, error) {
	if len(msg.To) == 0 {
		return nil, entity.ErrNoRecipients
	}

	messages := make([]message, 0, len(msg.To))
	for _, to := range msg.To {
		messages = append(messages, message{
			To:        to,
			Title:     msg.Title,
			Body:      msg.Body,
			Data:      msg.Data,
			Sound:     msg.Sound,
			Priority:  msg.Priority,
			ChannelID: msg.ChannelID,
		})
	}

	var (
		tickets []entity.PushTicket
		errs    []error
	)

	for start := 0; start < len(messages); start += ChunkSize {
		end := min(start+ChunkSize, len(messages))

		chunk, err := c.sendChunk(ctx, messages[start:end])
		if err != nil {
			errs = append(errs, fmt.Errorf("chunk %d-%d: %w", start, end, err))
			continue
		}

		tickets = append(tickets, chunk...)
	}

	return tickets, errors.Join(errs...)
}

func (c *Client) sendChunk(ctx context.Context, messages []message) ([]entity.PushTicket, error) {
	body, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("marshal messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var out sendResponse

	err = json.Unmarshal(respBody, &out)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("gateway error %s: %s", out.Errors[0].Code, out.Errors[0].Message)
	}

	for i := range out.Data {
		if i < len(messages) {
			out.Data[i].Token = messages[i].To
		}
	}

	return out.Data, nil
}
