// Package order wires the order CRUD module and its event publisher.
package order

import (
	"github.com/storemvp/storemvp/internal/order/inbound"
	"github.com/storemvp/storemvp/internal/order/outbound/memory"
	"github.com/storemvp/storemvp/internal/order/outbound/mq"
	"github.com/storemvp/storemvp/internal/order/usecase"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/config"
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
	UUID       uid.StringID                `validate:"required"`
	UID        uid.NumberID                `validate:"required"`
	Clock      clock.Clocker               `validate:"required"`
	Validator  *validation.StructValidator `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := memory.NewStore(dep.UUID, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Repo:          repo,
		RepoMessaging: repoMsg,
		Clock:         dep.Clock,
		NumberGen:     dep.UID,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
