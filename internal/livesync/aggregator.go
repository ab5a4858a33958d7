package livesync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

type Update struct {
	Jobs      []entity.JobAssignment `json:"jobs"`
	NewJobIDs []uuid.UUID            `json:"newJobIds"`
	Source    string                 `json:"source"`
	At        time.Time              `json:"at"`
}

type Sink interface {
	Publish(ctx context.Context, u Update) error
}

type SinkFunc func(ctx context.Context, u Update) error

func (f SinkFunc) Publish(ctx context.Context, u Update) error {
	return f(ctx, u)
}

// Aggregator keeps the last snapshot of every query and republishes their union
// whenever one of them changes.
type Aggregator struct {
	l       *slog.Logger
	queries []Query
	sinks   []Sink
	now     func() time.Time

	mu         sync.Mutex
	partitions [][]entity.JobAssignment
	seeded     []bool
	seen       map[uuid.UUID]struct{}
}

func NewAggregator(l *slog.Logger, queries []Query, sinks ...Sink) *Aggregator {
	return &Aggregator{
		l:          l,
		queries:    queries,
		sinks:      sinks,
		now:        time.Now,
		partitions: make([][]entity.JobAssignment, len(queries)),
		seeded:     make([]bool, len(queries)),
		seen:       make(map[uuid.UUID]struct{}),
	}
}

// Run blocks until ctx is done and every query has returned.
func (a *Aggregator) Run(ctx context.Context) {
	wg := &sync.WaitGroup{}

	for i, q := range a.queries {
		wg.Add(1)

		go func() {
			defer wg.Done()

			q.Run(ctx,
				func(jobs []entity.JobAssignment) { a.Apply(ctx, i, jobs) },
				func(err error) {
					a.l.ErrorContext(ctx, "live query failed", "query", q.Name(), "error", err)
				},
			)
		}()
	}

	wg.Wait()
}

// Apply replaces partition idx with jobs and publishes the new union.
func (a *Aggregator) Apply(ctx context.Context, idx int, jobs []entity.JobAssignment) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.partitions[idx] = jobs

	var newIDs []uuid.UUID

	for _, job := range jobs {
		if _, ok := a.seen[job.ID]; ok {
			continue
		}

		a.seen[job.ID] = struct{}{}

		if a.seeded[idx] {
			newIDs = append(newIDs, job.ID)
		}
	}

	a.seeded[idx] = true

	u := Update{
		Jobs:      Merge(a.partitions...),
		NewJobIDs: newIDs,
		Source:    a.queries[idx].Name(),
		At:        a.now(),
	}

	for _, s := range a.sinks {
		err := s.Publish(ctx, u)
		if err != nil {
			a.l.WarnContext(ctx, "publish live update", "error", err)
		}
	}
}

// Jobs returns the current union.
func (a *Aggregator) Jobs() []entity.JobAssignment {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Merge(a.partitions...)
}
