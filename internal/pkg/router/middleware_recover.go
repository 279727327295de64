package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/problem"
	"github.com/storemvp/storemvp/internal/pkg/stacktrace"
)

func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", string(stack))
				}

				if r.Header.Get("Connection") != "Upgrade" {
					writeProblem(w, problem.From(nil, instrument.GetCorrelationID(r.Context()), r.URL.Path, false))
				}
			}
		}()

		next.ServeHTTP(w, r)
	})
}
