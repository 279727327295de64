// Package router wraps httprouter with the application handler signature,
// the standard middleware chain, and the error response codec.
package router

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/problem"
	"github.com/storemvp/storemvp/internal/pkg/uid"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(r *Request) (any, error)

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr      *httprouter.Router
	debug   bool
	encoder func(w http.ResponseWriter, r *http.Request, resp any)
	mws     []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeProblem(w, problem.New(http.StatusNotFound, "Not Found", "endpoint not found", r.URL.Path))
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeProblem(w, problem.New(http.StatusMethodNotAllowed, "Method Not Allowed", "method not allowed", r.URL.Path))
		}),
	}

	hr.GET("/", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		writeJSON(w, map[string]string{"message": "Welcome to Online Store API"}, http.StatusOK)
	})

	okCodec := func(w http.ResponseWriter, r *http.Request, resp any) {
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		code := http.StatusOK
		if sc, ok := resp.(interface{ StatusCode() int }); ok {
			code = sc.StatusCode()
		}
		if code == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if loc, ok := resp.(interface{ Location() string }); ok {
			w.Header().Set("Location", loc.Location())
		}

		writeJSON(w, resp, code)
	}

	var debug bool
	if cfg.Config != nil {
		debug = cfg.Config.GetString("app.env") == "development"
	}

	return &Router{
		hr:      hr,
		debug:   debug,
		encoder: okCodec,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareIP,
			middlewareCorrelationID(cfg.UUID),
			middlewareObservability(cfg.Instrument),
			middlewareMaintenance(cfg.Config),
		},
	}
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// GETRaw registers a GET endpoint that writes directly to the response writer.
func (r *Router) GETRaw(path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(http.MethodGet, path, Chain(h, append(r.mws, mws...)...))
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			if setter, ok := w.(interface{ SetError(error) }); ok {
				setter.SetError(err)
			}
			r.writeError(w, re, err)
			return
		}
		r.encoder(w, re, resp)
	}), append(r.mws, mws...)...))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// writeError logs the failure and writes the structured error body. Expected
// failures log at warn; anything unclassified logs at error since it means a
// bug or an unhealthy dependency.
func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()

	kind := goerror.KindOf(err)
	if kind == goerror.KindServer {
		slog.ErrorContext(ctx, "request failed unexpectedly", "method", req.Method, "path", req.URL.Path, "err", err)
	} else {
		slog.WarnContext(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "kind", kind.String(), "err", err)
	}

	writeProblem(w, problem.From(err, instrument.GetCorrelationID(ctx), req.URL.Path, r.debug))
}

func writeProblem(w http.ResponseWriter, p problem.Problem) {
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("server: failed to encode problem to json", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
