package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/storemvp/storemvp/internal/order/usecase"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/shared/event"
)

type stubClient struct {
	calls    int
	failures int
	last     messaging.Message
	lastDest string
}

func (c *stubClient) Publish(_ context.Context, destination string, msg messaging.Message) error {
	c.calls++
	if c.calls <= c.failures {
		return errors.New("broker unavailable")
	}
	c.lastDest = destination
	c.last = msg
	return nil
}

func (c *stubClient) Consume(context.Context, string, messaging.Handler, ...messaging.ConsumeOption) error {
	return nil
}

func (c *stubClient) Close() error {
	return nil
}

func placedEvent() usecase.OrderPlacedEvent {
	return usecase.OrderPlacedEvent{
		OrderID:    "o-1",
		Number:     42,
		CustomerID: "c-1",
		ProductID:  "p-1",
		Quantity:   2,
		Total:      159.98,
	}
}

func TestPublishOrderPlaced(t *testing.T) {
	// Arrange
	client := &stubClient{}
	m := NewMessaging(client, instrument.NewNoop())

	ctx := instrument.SetCorrelationID(context.Background(), "trace-1")

	// Act
	err := m.PublishOrderPlaced(ctx, placedEvent())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastDest != event.OrderPlacedDestination {
		t.Fatalf("unexpected destination: %q", client.lastDest)
	}
	if string(client.last.Key) != "o-1" {
		t.Fatalf("expected order id as partition key, got %q", client.last.Key)
	}
	if client.last.Headers["cID"] != "trace-1" {
		t.Fatalf("expected correlation header, got %v", client.last.Headers)
	}

	var payload event.OrderPlacedMessage
	if err := json.Unmarshal(client.last.Body, &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.OrderID != "o-1" || payload.Total != 159.98 || payload.Number != 42 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPublishOrderPlacedRetriesTransientFailures(t *testing.T) {
	// Arrange
	client := &stubClient{failures: 2}
	m := NewMessaging(client, instrument.NewNoop())

	// Act
	err := m.PublishOrderPlaced(context.Background(), placedEvent())

	// Assert
	if err != nil {
		t.Fatalf("expected retries to absorb transient failures, got %v", err)
	}
	if client.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", client.calls)
	}
}

func TestPublishOrderPlacedGivesUpAfterMaxRetries(t *testing.T) {
	// Arrange
	client := &stubClient{failures: 10}
	m := NewMessaging(client, instrument.NewNoop())

	// Act
	err := m.PublishOrderPlaced(context.Background(), placedEvent())

	// Assert
	if err == nil {
		t.Fatal("expected the publish failure to surface")
	}
	if client.calls != 4 {
		t.Fatalf("expected initial attempt plus 3 retries, got %d", client.calls)
	}
}
