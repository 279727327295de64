package router

import (
	"net/http"
	"strings"

	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
)

const (
	// HeaderCorrelationID is the canonical header used to track requests
	// end-to-end. It is always set on the response.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some
	// proxies.
	HeaderRequestID = "X-Request-ID"

	// maxCIDLen caps client-supplied ids so log lines stay bounded.
	maxCIDLen = 128
)

// correlationHeaders are checked in priority order before a fresh id is
// generated.
var correlationHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// normalizeCID sanitizes a client-supplied correlation id. Values carrying
// CR or LF are rejected outright, the rest is trimmed and capped at
// maxCIDLen bytes.
func normalizeCID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	if len(v) > maxCIDLen {
		v = v[:maxCIDLen]
	}
	return v
}

func middlewareCorrelationID(uid uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cid string
			for _, header := range correlationHeaders {
				if cid = normalizeCID(r.Header.Get(header)); cid != "" {
					break
				}
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
