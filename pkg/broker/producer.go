package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/staff/internal/entity"
)

type Producer struct {
	l                *slog.Logger
	w                *kafka.Writer
	jobChangesTopic  string
	assignmentsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, jobChangesTopic, assignmentsTopic string) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                l,
		w:                w,
		jobChangesTopic:  jobChangesTopic,
		assignmentsTopic: assignmentsTopic,
	}
}

// JobChanged tells every live query watching jobs to re-run.
func (p *Producer) JobChanged(ctx context.Context, event entity.JobChangedEvent) {
	p.write(ctx, p.jobChangesTopic, event.JobID.String(), event)
}

func (p *Producer) JobAssigned(ctx context.Context, event entity.JobAssignedEvent) {
	p.write(ctx, p.assignmentsTopic, event.StaffID.String(), event)
}

func (p *Producer) write(ctx context.Context, topic, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err), "topic", topic)
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: b,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err), "topic", topic)
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
