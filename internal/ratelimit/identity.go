package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// ClientIdentity derives a stable client identity from request
// metadata. Precedence: first hop of the X-Forwarded-For chain, then
// the remote socket address, then "unknown". Values are taken as-is;
// spoofed or malformed entries are not validated.
func ClientIdentity(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}
