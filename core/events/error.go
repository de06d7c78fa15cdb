package events

const (
	// KindSessionError identifies any upstream-declared error.
	KindSessionError Kind = "error"
	// KindRateLimitError identifies the upstream rate_limit_exceeded code.
	KindRateLimitError Kind = "rate_limit_error"
	// KindSessionExpired identifies the upstream session_expired code.
	KindSessionExpired Kind = "session_expired"
)

// SessionError wraps an upstream-declared error. Every upstream error emits
// one of these; the named variants below are emitted in addition for codes a
// subscriber can act on without string-matching.
type SessionError struct {
	Base
	Code    string
	Message string
}

// NewSessionError creates a generic session error event.
func NewSessionError(code, message string) SessionError {
	return SessionError{Base: NewBase(KindSessionError), Code: code, Message: message}
}

// RateLimitError marks an upstream rate limit; subscribers should retry later.
type RateLimitError struct {
	Base
	Message string
}

// NewRateLimitError creates a rate limit error event.
func NewRateLimitError(message string) RateLimitError {
	return RateLimitError{Base: NewBase(KindRateLimitError), Message: message}
}

// SessionExpired marks an expired upstream session; subscribers must reconnect.
type SessionExpired struct {
	Base
	Message string
}

// NewSessionExpired creates a session expired event.
func NewSessionExpired(message string) SessionExpired {
	return SessionExpired{Base: NewBase(KindSessionExpired), Message: message}
}
