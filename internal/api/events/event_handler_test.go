package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/internal/api/events"
	"github.com/samandr77/microservices/staff/internal/entity"
)

type serviceStub struct {
	events []entity.JobAssignedEvent
	err    error
}

func (s *serviceStub) HandleJobAssigned(_ context.Context, event entity.JobAssignedEvent) error {
	s.events = append(s.events, event)
	return s.err
}

func message(t *testing.T, v any) kafka.Message {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return kafka.Message{Topic: "staff.assignments", Value: b}
}

func TestEventHandler_OnJobAssigned(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	event := entity.JobAssignedEvent{
		JobID:       uuid.Must(uuid.NewV4()),
		StaffID:     uuid.Must(uuid.NewV4()),
		Title:       "Turnover",
		Priority:    entity.PriorityHigh,
		ScheduledAt: time.Date(2030, time.January, 7, 11, 0, 0, 0, time.UTC),
	}

	require.NoError(t, h.OnJobAssigned(context.Background(), message(t, event)))
	require.Len(t, stub.events, 1)
	require.Equal(t, event.JobID, stub.events[0].JobID)
	require.Equal(t, event.StaffID, stub.events[0].StaffID)
	require.True(t, event.ScheduledAt.Equal(stub.events[0].ScheduledAt))
}

func TestEventHandler_OnJobAssigned_Rejected(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	err := h.OnJobAssigned(context.Background(), kafka.Message{Value: []byte("{")})
	require.ErrorContains(t, err, "unmarshal event")

	err = h.OnJobAssigned(context.Background(), message(t, entity.JobAssignedEvent{JobID: uuid.Must(uuid.NewV4())}))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	require.Empty(t, stub.events)
}

func TestEventHandler_OnJobAssigned_ServiceError(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{err: errors.New("db down")}
	h := events.NewEventHandler(stub)

	event := entity.JobAssignedEvent{JobID: uuid.Must(uuid.NewV4()), StaffID: uuid.Must(uuid.NewV4())}

	err := h.OnJobAssigned(context.Background(), message(t, event))
	require.ErrorContains(t, err, "handle job assigned "+event.JobID.String())
	require.ErrorContains(t, err, "db down")
}
