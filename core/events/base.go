package events

import "time"

// Kind names one notification emitted by the pipeline. Subscriptions are
// keyed on it, and its string value matches the notification name on the
// subscriber side.
type Kind string

// Event is one emitted notification. Every event carries its kind and the
// time it was created.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base holds the fields shared by every event. Event structs embed it and
// build it through NewBase so the emission time is always stamped.
type Base struct {
	kind      Kind
	timestamp time.Time
}

// NewBase creates a base stamped with the kind and the current time.
func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

// Kind returns the event's notification kind.
func (b Base) Kind() Kind { return b.kind }

// Timestamp returns the event's creation time.
func (b Base) Timestamp() time.Time { return b.timestamp }
