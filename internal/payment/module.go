// Package payment wires the payment CRUD module and its order event consumer.
package payment

import (
	"context"

	"github.com/storemvp/storemvp/internal/payment/inbound"
	"github.com/storemvp/storemvp/internal/payment/outbound/memory"
	"github.com/storemvp/storemvp/internal/payment/usecase"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/goroutine"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/pkg/router"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/pkg/validation"
)

type Dependency struct {
	Router     *router.Router              `validate:"required"`
	Config     config.Config               `validate:"required"`
	Instrument instrument.Instrumentation  `validate:"required"`
	Messaging  messaging.Messaging         `validate:"required"`
	Goroutine  *goroutine.Manager          `validate:"required"`
	UUID       uid.StringID                `validate:"required"`
	OID        uid.StringID                `validate:"required"`
	Clock      clock.Clocker               `validate:"required"`
	Validator  *validation.StructValidator `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := memory.NewStore(dep.UUID, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Repo:       repo,
		Clock:      dep.Clock,
		RefGen:     dep.OID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	inbound.RegisterMQConsumer(ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
