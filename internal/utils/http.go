// Package utils provides general-purpose helper utilities
// used across different parts of the application.
package utils

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secret-custody/models"
)

// RequestMetaFromRequest extracts the audit metadata of an inbound HTTP
// request: the client IP and the user agent.
//
// The IP is taken from the first entry of the X-Forwarded-For header when a
// reverse proxy set one, falling back to the connection's remote address
// with the port stripped. Either value may end up empty; the audit layer
// records absent values as "unknown".
func RequestMetaFromRequest(r *http.Request) models.RequestMeta {
	if r == nil {
		return models.RequestMeta{}
	}

	ip := ""
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	} else {
		ip = r.RemoteAddr
	}

	return models.RequestMeta{
		IP:        ip,
		UserAgent: r.UserAgent(),
	}
}

// LocalRequestMeta is the metadata recorded for operations initiated from
// the local console rather than an HTTP request.
func LocalRequestMeta() models.RequestMeta {
	return models.RequestMeta{IP: "local", UserAgent: "custodyctl"}
}
