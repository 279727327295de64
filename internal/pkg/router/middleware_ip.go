package router

import (
	"net"
	"net/http"
	"strings"
)

// clientIPHeaders are checked in priority order before falling back to the
// socket address.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := clientIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		v := r.Header.Get(header)
		if v == "" {
			continue
		}
		// X-Forwarded-For may carry a chain; the client is the first hop.
		candidate, _, _ := strings.Cut(v, ",")
		candidate = strings.TrimSpace(candidate)
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return ""
}
