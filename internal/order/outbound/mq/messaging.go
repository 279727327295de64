// Package mq publishes order events to the message bus.
package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/storemvp/storemvp/internal/order/usecase"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

// PublishOrderPlaced announces a stored order. Transient broker failures are
// retried with capped exponential backoff before the error surfaces.
func (m *Messaging) PublishOrderPlaced(ctx context.Context, ev usecase.OrderPlacedEvent) error {
	ctx, span := m.ins.Tracer("order.outbound.mq").Start(ctx, "PublishOrderPlaced")
	defer span.End()

	body, err := json.Marshal(event.OrderPlacedMessage{
		OrderID:    ev.OrderID,
		Number:     ev.Number,
		CustomerID: ev.CustomerID,
		ProductID:  ev.ProductID,
		Quantity:   ev.Quantity,
		Total:      ev.Total,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	msg := messaging.Message{
		Body:    body,
		Key:     []byte(ev.OrderID),
		Headers: map[string]string{keyOfCorrelationID: instrument.GetCorrelationID(ctx)},
	}

	b := retry.WithMaxRetries(3, retry.NewExponential(100*time.Millisecond))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := m.client.Publish(ctx, event.OrderPlacedDestination, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
