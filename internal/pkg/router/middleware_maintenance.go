package router

import (
	"net/http"

	"github.com/storemvp/storemvp/internal/pkg/config"
	"github.com/storemvp/storemvp/internal/pkg/problem"
)

func middlewareMaintenance(cfg config.Config) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if _, blocked := endpoints[route]; blocked {
				writeProblem(w, problem.New(
					http.StatusServiceUnavailable,
					"Service Unavailable",
					"service is under maintenance",
					r.URL.Path,
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
