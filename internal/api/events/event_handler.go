package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/staff/internal/entity"
)

type Service interface {
	HandleJobAssigned(ctx context.Context, event entity.JobAssignedEvent) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

func (h *EventHandler) OnJobAssigned(ctx context.Context, msg kafka.Message) error {
	var event entity.JobAssignedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.JobID == uuid.Nil || event.StaffID == uuid.Nil {
		return fmt.Errorf("%w: job assigned event without ids", entity.ErrInvalidArgument)
	}

	err = h.s.HandleJobAssigned(ctx, event)
	if err != nil {
		return fmt.Errorf("handle job assigned %s: %w", event.JobID, err)
	}

	return nil
}
