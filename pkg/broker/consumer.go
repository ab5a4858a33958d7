package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	l             *slog.Logger
	r             *kafka.Reader
	wg            *sync.WaitGroup
	topicHandlers map[string]func(context.Context, kafka.Message) error
}

func NewConsumer(
	l *slog.Logger,
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	return newConsumer(l, kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
	})
}

// NewBroadcastConsumer joins a consumer group of its own, so every running instance
// receives every message of topics. A fresh group starts at the newest offset.
func NewBroadcastConsumer(
	l *slog.Logger,
	brokers []string,
	groupPrefix string,
	topics ...string,
) *Consumer {
	return newConsumer(l, kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     InstanceGroupID(groupPrefix),
		GroupTopics: topics,
		StartOffset: kafka.LastOffset,
	})
}

// InstanceGroupID derives a group id unique to this process from the host name and pid.
func InstanceGroupID(prefix string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = uuid.Must(uuid.NewV4()).String()
	}

	return fmt.Sprintf("%s-%s-%d", prefix, host, os.Getpid())
}

func newConsumer(l *slog.Logger, cfg kafka.ReaderConfig) *Consumer {
	l = l.WithGroup("kafka").With("group_id", cfg.GroupID)

	cfg.Logger = &infoLogger{l: l}
	cfg.ErrorLogger = &errorLogger{l: l}

	return &Consumer{
		l:             l,
		r:             kafka.NewReader(cfg),
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
	}
}

func (c *Consumer) Handle(topic string, handler func(context.Context, kafka.Message) error) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error(fmt.Sprintf("read kafka msg: %s", err))

				continue
			}

			handler, ok := c.topicHandlers[m.Topic]
			if !ok {
				c.l.Warn("kafka handler not found", "topic", m.Topic)
				continue
			}

			err = handler(ctx, m)
			if err != nil {
				c.l.Error(fmt.Sprintf("handle kafka msg: %s", err), "topic", m.Topic)
			}
		}
	}()

	return c
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}
