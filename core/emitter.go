package pipeline

import (
	"slices"
	"sync"

	"github.com/voxtable/voiceorder-core/core/events"
)

// Handler consumes one application event.
type Handler func(events.Event)

// Emitter is the notification hub of the pipeline. Subscriptions are keyed by
// event kind and every subscribe returns its own unsubscribe closure, so
// detaching everything is structural rather than a bookkeeping convention.
type Emitter struct {
	mu            sync.Mutex
	nextID        int
	subscriptions map[events.Kind]map[int]Handler
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{subscriptions: map[events.Kind]map[int]Handler{}}
}

// Subscribe registers a handler for one event kind and returns the closure
// that removes it. Unsubscribing twice is a no-op.
func (e *Emitter) Subscribe(kind events.Kind, handler Handler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.subscriptions[kind] == nil {
		e.subscriptions[kind] = map[int]Handler{}
	}
	e.nextID++
	id := e.nextID
	e.subscriptions[kind][id] = handler

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subscriptions[kind], id)
	}
}

// Emit delivers the event to every handler subscribed to its kind, in
// subscription order.
func (e *Emitter) Emit(event events.Event) {
	e.mu.Lock()
	handlers := e.subscriptions[event.Kind()]
	ordered := make([]int, 0, len(handlers))
	for id := range handlers {
		ordered = append(ordered, id)
	}
	slices.Sort(ordered)
	snapshot := make([]Handler, 0, len(ordered))
	for _, id := range ordered {
		snapshot = append(snapshot, handlers[id])
	}
	e.mu.Unlock()

	for _, handler := range snapshot {
		handler(event)
	}
}

// ListenerCount reports the number of live subscriptions across all kinds.
func (e *Emitter) ListenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, handlers := range e.subscriptions {
		count += len(handlers)
	}
	return count
}

// Close detaches every subscription. The emitter stays usable; new
// subscriptions attach to a fresh table.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscriptions = map[events.Kind]map[int]Handler{}
}
