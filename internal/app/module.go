package app

import (
	"log/slog"
	"os"

	"github.com/storemvp/storemvp/internal/catalog"
	"github.com/storemvp/storemvp/internal/customer"
	"github.com/storemvp/storemvp/internal/order"
	"github.com/storemvp/storemvp/internal/payment"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.customer.enabled") {
		if err := customer.New(customer.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module customer", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.order.enabled") {
		if err := order.New(order.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Messaging:  a.messaging,
			UUID:       a.uuid,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module order", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.payment.enabled") {
		if err := payment.New(a.ctx, payment.Dependency{
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Messaging:  a.messaging,
			Goroutine:  a.goroutine,
			UUID:       a.uuid,
			OID:        a.oid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module payment", "error", err)
			os.Exit(1)
		}
	}
}
