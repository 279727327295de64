package app

import (
	"context"
	"net/http"

	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/goroutine"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/pkg/router"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/pkg/validation"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator *validation.StructValidator
	clock     clock.Clocker
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID

	// resources
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
