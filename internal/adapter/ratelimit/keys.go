package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// ClientKey derives the throttling identity for a request: the first
// X-Forwarded-For entry when present, else the socket address host. The key
// is a grouping label only, never an authenticated identity.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return PlaceholderKey
}
