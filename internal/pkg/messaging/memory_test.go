package messaging

import (
	"context"
	"testing"
	"time"
)

func waitForSubscriber(t *testing.T, m *Memory, source string, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		n := len(m.subs[source])
		m.mu.Unlock()
		if n >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d subscriber(s) on %s", want, source)
}

func TestMemoryPublishConsume(t *testing.T) {
	// Arrange
	m := NewMemory()
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	go func() {
		_ = m.Consume(ctx, "orders", func(_ context.Context, msg Message) error {
			received <- msg
			return nil
		})
	}()
	waitForSubscriber(t, m, "orders", 1)

	// Act
	err := m.Publish(ctx, "orders", Message{
		Body:    []byte(`{"order_id":"o-1"}`),
		Key:     []byte("o-1"),
		Headers: map[string]string{"cID": "trace-1"},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	// Assert
	select {
	case msg := <-received:
		if string(msg.Body) != `{"order_id":"o-1"}` {
			t.Fatalf("unexpected body: %s", msg.Body)
		}
		if msg.Header("cID") != "trace-1" {
			t.Fatalf("unexpected correlation header: %q", msg.Header("cID"))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestMemoryPublishWithoutSubscriberDropsQuietly(t *testing.T) {
	// Arrange
	m := NewMemory()
	defer m.Close()

	// Act
	err := m.Publish(context.Background(), "nobody-listens", Message{Body: []byte("x")})

	// Assert
	if err != nil {
		t.Fatalf("expected publish without subscribers to succeed, got %v", err)
	}
}

func TestMemoryFanOut(t *testing.T) {
	// Arrange
	m := NewMemory()
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := make(chan Message, 1)
	second := make(chan Message, 1)

	go func() {
		_ = m.Consume(ctx, "orders", func(_ context.Context, msg Message) error {
			first <- msg
			return nil
		})
	}()
	go func() {
		_ = m.Consume(ctx, "orders", func(_ context.Context, msg Message) error {
			second <- msg
			return nil
		})
	}()
	waitForSubscriber(t, m, "orders", 2)

	// Act
	if err := m.Publish(ctx, "orders", Message{Body: []byte("hello")}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	// Assert
	for i, ch := range []chan Message{first, second} {
		select {
		case msg := <-ch:
			if string(msg.Body) != "hello" {
				t.Fatalf("subscriber %d: unexpected body %s", i, msg.Body)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("subscriber %d: timed out", i)
		}
	}
}

func TestMemoryPublishAfterClose(t *testing.T) {
	// Arrange
	m := NewMemory()
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Act
	err := m.Publish(context.Background(), "orders", Message{Body: []byte("x")})

	// Assert
	if err == nil {
		t.Fatal("expected publish on closed messaging to fail")
	}
}

func TestNewFromDriverUnknown(t *testing.T) {
	// Act
	_, err := NewFromDriver(context.Background(), "carrier-pigeon", FactoryOptions{})

	// Assert
	if err == nil {
		t.Fatal("expected unknown driver error")
	}
}

func TestMessageHeader(t *testing.T) {
	// Arrange
	msg := Message{Headers: map[string]string{"cID": "abc"}}

	// Assert
	if msg.Header("cID") != "abc" {
		t.Fatalf("unexpected header value: %q", msg.Header("cID"))
	}
	if msg.Header("missing") != "" {
		t.Fatalf("expected empty value for missing header")
	}
}
