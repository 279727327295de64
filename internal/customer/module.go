// Package customer wires the customer CRUD module.
package customer

import (
	"github.com/storemvp/storemvp/internal/customer/inbound"
	"github.com/storemvp/storemvp/internal/customer/outbound/memory"
	"github.com/storemvp/storemvp/internal/customer/usecase"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/router"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/pkg/validation"
)

type Dependency struct {
	Router     *router.Router              `validate:"required"`
	Config     config.Config               `validate:"required"`
	Instrument instrument.Instrumentation  `validate:"required"`
	UUID       uid.StringID                `validate:"required"`
	Clock      clock.Clocker               `validate:"required"`
	Validator  *validation.StructValidator `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := memory.NewStore(dep.UUID, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Repo:       repo,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
