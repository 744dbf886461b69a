package notification

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQueueFull is returned when a change arrives while the queue is full. The change is dropped.
var ErrQueueFull = errors.New("notification queue full")

// PublishTimeout bounds one delivery attempt to the wrapped publisher.
const PublishTimeout = 5 * time.Second

// QueuedPublisher hands changes to a background goroutine so a slow or unreachable broker
// never holds up the request that produced the change. One goroutine drains the queue, so
// changes reach the wrapped publisher in the order they were queued.
type QueuedPublisher struct {
	next    Publisher
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Change
	done   chan struct{}
}

func NewQueuedPublisher(next Publisher, size int) *QueuedPublisher {
	if size < 1 {
		size = 1
	}
	p := &QueuedPublisher{
		next:    next,
		timeout: PublishTimeout,
		queue:   make(chan Change, size),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish never blocks. The request context is not used for delivery since the request is
// usually finished by the time the change is sent.
func (p *QueuedPublisher) Publish(_ context.Context, ch Change) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrQueueFull
	}
	select {
	case p.queue <- ch:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *QueuedPublisher) run() {
	defer close(p.done)
	for ch := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		Notify(ctx, p.next, ch)
		cancel()
	}
}

// Close stops accepting changes and waits until the queued ones are delivered or ctx ends.
func (p *QueuedPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
