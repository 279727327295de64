package messaging

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

const memorySubscriberBuffer = 64

// Memory is an in-process Messaging implementation. It delivers published
// messages to every active consumer of the same destination and is intended
// for local development and tests where no broker is available.
type Memory struct {
	mu     sync.Mutex
	subs   map[string][]chan Message
	closed bool
}

// NewMemory constructs an in-process messaging client.
func NewMemory() *Memory {
	return &Memory{subs: make(map[string][]chan Message)}
}

// Close stops delivery and releases all consumer channels.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	for _, chans := range m.subs {
		for _, ch := range chans {
			close(ch)
		}
	}
	m.subs = nil
	return nil
}

// Publish delivers a message to all consumers of the destination. Messages
// published while no consumer is active are dropped.
func (m *Memory) Publish(ctx context.Context, destination string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return io.ErrClosedPipe
	}

	for _, ch := range m.subs[destination] {
		select {
		case ch <- msg:
		default:
			slog.WarnContext(ctx, "in-process subscriber buffer full, message dropped", "destination", destination)
		}
	}
	return nil
}

// Consume delivers messages from the source to the handler until the context
// is canceled. Handler errors are logged; in-process delivery has no redelivery.
func (m *Memory) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	co := newConsumeOptions(opts...)

	ch := make(chan Message, memorySubscriberBuffer)
	if err := m.subscribe(source, ch); err != nil {
		return err
	}
	defer m.unsubscribe(source, ch)

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for msg := range ch {
				if err := callHandlerWithRecover(ctx, "memory", func() error {
					return handler(ctx, msg)
				}); err != nil {
					slog.ErrorContext(ctx, "in-process handler failed", "source", source, "err", err)
				}
			}
		})
	}

	<-ctx.Done()
	m.unsubscribe(source, ch)
	wg.Wait()
	return ctx.Err()
}

func (m *Memory) subscribe(source string, ch chan Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return io.ErrClosedPipe
	}
	m.subs[source] = append(m.subs[source], ch)
	return nil
}

func (m *Memory) unsubscribe(source string, ch chan Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	chans := m.subs[source]
	for i := range chans {
		if chans[i] == ch {
			m.subs[source] = append(chans[:i], chans[i+1:]...)
			close(ch)
			return
		}
	}
}
