package models

// unknownMeta is recorded when the caller cannot supply request metadata.
const unknownMeta = "unknown"

// RequestMeta carries the client-side context of an inbound request.
// It is consumed only as audit metadata; absence of either value is
// tolerated and recorded as "unknown".
type RequestMeta struct {
	// IP is the client network address as reported by the transport.
	IP string `json:"ip"`

	// UserAgent is the client software identifier, if any.
	UserAgent string `json:"user_agent"`
}

// IPOrUnknown returns the client IP, or "unknown" when it was not supplied.
func (m RequestMeta) IPOrUnknown() string {
	if m.IP == "" {
		return unknownMeta
	}
	return m.IP
}

// UserAgentOrUnknown returns the user agent, or "unknown" when it was not
// supplied.
func (m RequestMeta) UserAgentOrUnknown() string {
	if m.UserAgent == "" {
		return unknownMeta
	}
	return m.UserAgent
}
