package livesync_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/livesync"
)

var base = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func job(id uuid.UUID, scheduledIn, updatedIn time.Duration, title string) entity.JobAssignment {
	return entity.JobAssignment{
		ID:          id,
		Title:       title,
		ScheduledAt: base.Add(scheduledIn),
		UpdatedAt:   base.Add(updatedIn),
	}
}

func ids(jobs []entity.JobAssignment) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}

	return out
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a, b, c := newID(), newID(), newID()

	tests := []struct {
		name       string
		partitions [][]entity.JobAssignment
		wantIDs    []uuid.UUID
		wantTitle  map[uuid.UUID]string
	}{
		{
			name:    "empty",
			wantIDs: []uuid.UUID{},
		},
		{
			name: "union without duplicates sorted by schedule",
			partitions: [][]entity.JobAssignment{
				{job(a, 2*time.Hour, 0, "a")},
				{job(b, time.Hour, 0, "b"), job(a, 2*time.Hour, 0, "a")},
				{job(c, 3*time.Hour, 0, "c")},
			},
			wantIDs: []uuid.UUID{b, a, c},
		},
		{
			name: "newest copy wins",
			partitions: [][]entity.JobAssignment{
				{job(a, time.Hour, time.Minute, "old")},
				{job(a, time.Hour, 2*time.Minute, "new")},
			},
			wantIDs:   []uuid.UUID{a},
			wantTitle: map[uuid.UUID]string{a: "new"},
		},
		{
			name: "tie goes to earlier partition",
			partitions: [][]entity.JobAssignment{
				{job(a, time.Hour, time.Minute, "first")},
				{job(a, time.Hour, time.Minute, "second")},
			},
			wantIDs:   []uuid.UUID{a},
			wantTitle: map[uuid.UUID]string{a: "first"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := livesync.Merge(tt.partitions...)
			require.Equal(t, tt.wantIDs, ids(got))

			for _, j := range got {
				if title, ok := tt.wantTitle[j.ID]; ok {
					require.Equal(t, title, j.Title)
				}
			}
		})
	}
}

func TestMerge_SameScheduleOrderedByID(t *testing.T) {
	t.Parallel()

	a, b := newID(), newID()
	if a.String() > b.String() {
		a, b = b, a
	}

	got := livesync.Merge([]entity.JobAssignment{job(b, 0, 0, ""), job(a, 0, 0, "")})
	require.Equal(t, []uuid.UUID{a, b}, ids(got))
}

type recordSink struct {
	mu      sync.Mutex
	updates []livesync.Update
}

func (s *recordSink) Publish(_ context.Context, u livesync.Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, u)

	return nil
}

func (s *recordSink) last() livesync.Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updates[len(s.updates)-1]
}

func (s *recordSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.updates)
}

type namedQuery string

func (q namedQuery) Name() string { return string(q) }

func (q namedQuery) Run(context.Context, func([]entity.JobAssignment), func(error)) {}

func TestAggregator_ApplyUnionAndNewJobs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := &recordSink{}
	failing := livesync.SinkFunc(func(context.Context, livesync.Update) error { return errors.New("offline") })

	agg := livesync.NewAggregator(l,
		[]livesync.Query{namedQuery("assigned"), namedQuery("legacy"), namedQuery("open")},
		failing, sink,
	)

	a, b, c, d := newID(), newID(), newID(), newID()

	agg.Apply(ctx, 0, []entity.JobAssignment{job(a, time.Hour, 0, "a")})
	require.Empty(t, sink.last().NewJobIDs)

	agg.Apply(ctx, 1, []entity.JobAssignment{job(b, 2*time.Hour, 0, "b"), job(a, time.Hour, 0, "a")})
	require.Empty(t, sink.last().NewJobIDs)
	require.Equal(t, []uuid.UUID{a, b}, ids(sink.last().Jobs))

	agg.Apply(ctx, 2, []entity.JobAssignment{job(c, 3*time.Hour, 0, "c")})
	require.Empty(t, sink.last().NewJobIDs)
	require.Equal(t, "open", sink.last().Source)

	agg.Apply(ctx, 0, []entity.JobAssignment{job(a, time.Hour, 0, "a"), job(d, 30*time.Minute, 0, "d")})
	require.Equal(t, []uuid.UUID{d}, sink.last().NewJobIDs)
	require.Equal(t, []uuid.UUID{d, a, b, c}, ids(sink.last().Jobs))

	// d is announced once even when it moves to another partition
	agg.Apply(ctx, 2, []entity.JobAssignment{job(c, 3*time.Hour, 0, "c"), job(d, 30*time.Minute, 0, "d")})
	require.Empty(t, sink.last().NewJobIDs)

	// a snapshot fully replaces its own partition
	agg.Apply(ctx, 2, []entity.JobAssignment{})
	agg.Apply(ctx, 0, []entity.JobAssignment{})
	require.Equal(t, []uuid.UUID{a, b}, ids(agg.Jobs()))

	require.Equal(t, 7, sink.count())
}

type fakeQuery struct {
	name  string
	snaps [][]entity.JobAssignment
	err   error
}

func (q fakeQuery) Name() string { return q.name }

func (q fakeQuery) Run(ctx context.Context, emit func([]entity.JobAssignment), fail func(error)) {
	for _, s := range q.snaps {
		emit(s)
	}

	if q.err != nil {
		fail(q.err)
	}

	<-ctx.Done()
}

func TestAggregator_RunKeepsLastGoodPartitionOnFailure(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := &recordSink{}
	a, b := newID(), newID()

	agg := livesync.NewAggregator(l, []livesync.Query{
		fakeQuery{name: "assigned", snaps: [][]entity.JobAssignment{{job(a, 0, 0, "a")}}, err: errors.New("stream broke")},
		fakeQuery{name: "open", snaps: [][]entity.JobAssignment{{job(b, time.Hour, 0, "b")}}},
	}, sink)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	go func() {
		agg.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sink.count() == 2 }, time.Second, 5*time.Millisecond)
	require.Equal(t, []uuid.UUID{a, b}, ids(agg.Jobs()))

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("aggregator did not stop")
	}
}

func TestPollQuery_EmitsOnlyOnChange(t *testing.T) {
	t.Parallel()

	a := newID()

	var (
		calls   atomic.Int32
		title   atomic.Value
		emitted atomic.Int32
		failed  atomic.Int32
	)

	title.Store("v1")

	fetch := func(context.Context) ([]entity.JobAssignment, error) {
		n := calls.Add(1)
		if n == 3 {
			return nil, errors.New("db down")
		}

		return []entity.JobAssignment{job(a, 0, 0, title.Load().(string))}, nil
	}

	feed := livesync.NewChangeFeed()
	trigger, unsubscribe := feed.Subscribe()
	t.Cleanup(unsubscribe)

	q := livesync.NewPollQuery("assigned", fetch, time.Hour, trigger)
	require.Equal(t, "assigned", q.Name())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go q.Run(ctx, func([]entity.JobAssignment) { emitted.Add(1) }, func(error) { failed.Add(1) })

	require.Eventually(t, func() bool { return emitted.Load() == 1 }, time.Second, time.Millisecond)

	// same result: no emission
	feed.Notify()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	// failed fetch is reported
	feed.Notify()
	require.Eventually(t, func() bool { return failed.Load() == 1 }, time.Second, time.Millisecond)

	title.Store("v2")
	feed.Notify()
	require.Eventually(t, func() bool { return emitted.Load() == 2 }, time.Second, time.Millisecond)
}

func TestPollQuery_NonPositiveInterval(t *testing.T) {
	t.Parallel()

	fetch := func(context.Context) ([]entity.JobAssignment, error) {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, interval := range []time.Duration{0, -time.Second} {
		q := livesync.NewPollQuery("open", fetch, interval, nil)

		require.NotPanics(t, func() {
			q.Run(ctx, func([]entity.JobAssignment) {}, func(error) {})
		})
	}
}

func TestChangeFeed_Unsubscribe(t *testing.T) {
	t.Parallel()

	feed := livesync.NewChangeFeed()
	ch, unsubscribe := feed.Subscribe()
	require.Equal(t, 1, feed.Subscribers())

	feed.Notify()
	feed.Notify()

	require.Len(t, ch, 1)

	unsubscribe()
	require.Zero(t, feed.Subscribers())
}
