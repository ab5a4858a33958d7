package livesync

import (
	"context"
	"reflect"
	"time"

	"github.com/samandr77/microservices/staff/internal/entity"
)

type FetchFunc func(ctx context.Context) ([]entity.JobAssignment, error)

// Query delivers full result snapshots until ctx is done. A failed fetch is reported
// through fail and the query keeps running.
type Query interface {
	Name() string
	Run(ctx context.Context, emit func([]entity.JobAssignment), fail func(error))
}

// PollQuery re-runs fetch on every tick and on every trigger signal, emitting only
// when the result differs from the last emitted one.
type PollQuery struct {
	name     string
	fetch    FetchFunc
	interval time.Duration
	trigger  <-chan struct{}
}

const DefaultPollInterval = 15 * time.Second

// NewPollQuery builds a query polling every interval; a non-positive interval means
// DefaultPollInterval.
func NewPollQuery(name string, fetch FetchFunc, interval time.Duration, trigger <-chan struct{}) *PollQuery {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &PollQuery{
		name:     name,
		fetch:    fetch,
		interval: interval,
		trigger:  trigger,
	}
}

func (q *PollQuery) Name() string {
	return q.name
}

func (q *PollQuery) Run(ctx context.Context, emit func([]entity.JobAssignment), fail func(error)) {
	var (
		last    []entity.JobAssignment
		emitted bool
	)

	poll := func() {
		jobs, err := q.fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				fail(err)
			}

			return
		}

		if emitted && reflect.DeepEqual(last, jobs) {
			return
		}

		last, emitted = jobs, true

		emit(jobs)
	}

	poll()

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-q.trigger:
		}

		poll()
	}
}
