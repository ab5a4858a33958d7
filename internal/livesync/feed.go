package livesync

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"
)

// ChangeFeed fans job change signals out to live queries.
type ChangeFeed struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[int]chan struct{})}
}

// Subscribe returns a signal channel and the function that releases it. Signals that
// arrive while one is pending are coalesced.
func (f *ChangeFeed) Subscribe() (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++

	ch := make(chan struct{}, 1)
	f.subs[id] = ch

	return ch, func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		delete(f.subs, id)
	}
}

func (f *ChangeFeed) Notify() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// HandleMessage is the consumer handler for the job changes topic.
func (f *ChangeFeed) HandleMessage(_ context.Context, _ kafka.Message) error {
	f.Notify()
	return nil
}

func (f *ChangeFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subs)
}
