package messaging

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupported is returned when a feature is not supported by the selected
// broker, for example delayed delivery.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Messaging is a broker-agnostic client that can publish and consume messages.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic/subject/queue).
type Publisher interface {
	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, msg Message) error
}

// Consumer consumes messages from a source (topic/subject/subscription).
type Consumer interface {
	// Consume blocks and delivers messages from the source to the handler
	// until the context is canceled.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message. A nil return acknowledges the
// message; a non-nil return requests redelivery where the broker supports it.
type Handler func(ctx context.Context, msg Message) error

// Message is a broker-agnostic message.
type Message struct {
	// Body is the message payload.
	Body []byte

	// Key is used by brokers that partition by key.
	Key []byte

	// Headers carries string metadata such as correlation ids.
	Headers map[string]string
}

// Header returns the header value for key, or the empty string.
func (m Message) Header(key string) string {
	if m.Headers == nil {
		return ""
	}
	return m.Headers[key]
}
