package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg messaging.Message) context.Context {
	if cid := msg.Header(keyOfCorrelationID); cid != "" {
		return instrument.SetCorrelationID(ctx, cid)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OrderPlacedPayment(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("payment.inbound.mq").Start(ctx, "OrderPlacedPayment")
	defer span.End()

	slog.InfoContext(ctx, "consume: order placed payment", "msg_body", string(msg.Body))

	var payload event.OrderPlacedMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of order placed payment", "msg_body", string(msg.Body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOrderPlaced(ctx, payload); err != nil {
		slog.ErrorContext(ctx, "failed to consume order placed", "msg_body", string(msg.Body), "error", err)
		return err
	}

	return nil
}
