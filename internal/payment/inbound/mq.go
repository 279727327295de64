package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/goroutine"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabledConsumerNames := cfg.GetArray("modules.payment.consumer_names")

	var consumers = []struct {
		name    string
		source  string // destination where the publisher sent the message
		handler messaging.Handler
	}{
		{
			name:    event.OrderPlacedConsumerPayment,
			source:  event.OrderPlacedDestination,
			handler: mqHandler.OrderPlacedPayment,
		},
	}

	for _, consumer := range consumers {
		if !slices.Contains(enabledConsumerNames, consumer.name) {
			continue
		}

		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
			return messenger.Consume(pCtx,
				consumer.source,
				consumer.handler,
				messaging.WithChannel(consumer.name),
				messaging.WithQueueGroup(consumer.name),
				messaging.WithGroup(consumer.name),
				messaging.WithSubscription(consumer.name),
				messaging.WithConcurrency(10),
			)
		})
	}
}
