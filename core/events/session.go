package events

import "encoding/json"

const (
	// KindSessionCreated identifies upstream session creation, forwarded as-is.
	KindSessionCreated Kind = "session.created"
	// KindSessionUpdated identifies upstream session updates, forwarded as-is.
	KindSessionUpdated Kind = "session.updated"
	// KindResponseComplete identifies completion of an assistant response turn.
	KindResponseComplete Kind = "response.complete"
	// KindSpeechStarted identifies detected user speech while recording.
	KindSpeechStarted Kind = "speech.started"
)

// SessionCreated carries the raw session payload from the upstream service.
type SessionCreated struct {
	Base
	Session json.RawMessage
}

// NewSessionCreated creates a session created event.
func NewSessionCreated(session json.RawMessage) SessionCreated {
	return SessionCreated{Base: NewBase(KindSessionCreated), Session: session}
}

// SessionUpdated carries the raw session payload after an upstream update.
type SessionUpdated struct {
	Base
	Session json.RawMessage
}

// NewSessionUpdated creates a session updated event.
func NewSessionUpdated(session json.RawMessage) SessionUpdated {
	return SessionUpdated{Base: NewBase(KindSessionUpdated), Session: session}
}

// ResponseComplete marks the end of an assistant response and carries the raw
// response payload.
type ResponseComplete struct {
	Base
	Response json.RawMessage
}

// NewResponseComplete creates a response complete event.
func NewResponseComplete(response json.RawMessage) ResponseComplete {
	return ResponseComplete{Base: NewBase(KindResponseComplete), Response: response}
}

// SpeechStarted marks detected user speech activity during recording.
type SpeechStarted struct{ Base }

// NewSpeechStarted creates a speech started event.
func NewSpeechStarted() SpeechStarted {
	return SpeechStarted{Base: NewBase(KindSpeechStarted)}
}
