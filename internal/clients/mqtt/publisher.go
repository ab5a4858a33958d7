package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/pkg/config"
)

const (
	qos            = byte(1)
	publishTimeout = 3 * time.Second
	connectTimeout = 5 * time.Second
)

var ErrNotConnected = errors.New("mqtt client is not connected")

type Publisher struct {
	l      *slog.Logger
	client mqtt.Client
	prefix string
}

func New(l *slog.Logger, cfg config.MQTT) *Publisher {
	l = l.WithGroup("mqtt").With("broker", cfg.BrokerURL)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.ClientID, uuid.Must(uuid.NewV4()).String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		l.Warn("connection lost", "error", err)
	})

	opts.SetOnConnectHandler(func(mqtt.Client) {
		l.Info("connected")
	})

	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		l.Info("reconnecting")
	})

	return NewWithClient(l, mqtt.NewClient(opts), cfg.TopicPrefix)
}

func NewWithClient(l *slog.Logger, client mqtt.Client, prefix string) *Publisher {
	return &Publisher{
		l:      l,
		client: client,
		prefix: prefix,
	}
}

func (p *Publisher) Connect(ctx context.Context) error {
	token := p.client.Connect()

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(connectTimeout):
		return fmt.Errorf("connect: timeout after %s", connectTimeout)
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	return nil
}

// JobsTopic is the topic the live job list of one staff member is published to.
func (p *Publisher) JobsTopic(staffID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/jobs", p.prefix, staffID)
}

func (p *Publisher) PublishJobs(ctx context.Context, staffID uuid.UUID, payload any) error {
	return p.publish(ctx, p.JobsTopic(staffID), payload)
}

func (p *Publisher) publish(ctx context.Context, topic string, payload any) error {
	if !p.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	token := p.client.Publish(topic, qos, false, b)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timeout", topic)
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	p.l.DebugContext(ctx, "published", "topic", topic, "bytes", len(b))

	return nil
}

func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
