package pipeline

import "github.com/voxtable/voiceorder-core/core/events"

// finalTranscriptConfidence is the confidence stamped on finalized
// transcripts. The upstream service provides no real score; this is a
// conservative stand-in constant, not a computed metric.
const finalTranscriptConfidence = 0.95

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

type transcriptEntry struct {
	role       string
	text       string
	final      bool
	confidence float64
}

// transcriptAggregator builds per-item transcripts from created/delta/
// completed events. Items accumulate independently; a new user utterance can
// start while the assistant's is still streaming without the texts crossing.
type transcriptAggregator struct {
	entries map[string]*transcriptEntry
	emit    func(events.Event)
}

func newTranscriptAggregator(emit func(events.Event)) *transcriptAggregator {
	return &transcriptAggregator{
		entries: map[string]*transcriptEntry{},
		emit:    emit,
	}
}

// startItem initializes an empty entry for the item. A duplicate created
// event keeps the accumulated text.
func (a *transcriptAggregator) startItem(itemID, role string) {
	if itemID == "" {
		return
	}
	if _, exists := a.entries[itemID]; exists {
		return
	}
	a.entries[itemID] = &transcriptEntry{role: role}
}

// appendDelta appends the fragment to the item's transcript and emits a
// partial notification carrying the full accumulated text. Deltas for an
// already finalized entry are ignored; the completion transcript is
// authoritative.
func (a *transcriptAggregator) appendDelta(itemID, role, delta string) {
	entry := a.entry(itemID, role)
	if entry.final {
		return
	}

	entry.text += delta
	a.emitUpdate(itemID, entry)
}

// finalize replaces the accumulated text with the authoritative transcript
// and emits a final notification with the fixed confidence.
func (a *transcriptAggregator) finalize(itemID, role, transcript string) {
	entry := a.entry(itemID, role)
	entry.text = transcript
	entry.final = true
	entry.confidence = finalTranscriptConfidence
	a.emitUpdate(itemID, entry)
}

func (a *transcriptAggregator) reset() {
	clear(a.entries)
}

// entry returns the entry for the item, creating one when the created event
// was lost or arrived out of order.
func (a *transcriptAggregator) entry(itemID, role string) *transcriptEntry {
	entry, exists := a.entries[itemID]
	if !exists {
		entry = &transcriptEntry{role: role}
		a.entries[itemID] = entry
	}
	if entry.role == "" {
		entry.role = role
	}
	return entry
}

func (a *transcriptAggregator) emitUpdate(itemID string, entry *transcriptEntry) {
	if entry.role == roleAssistant {
		a.emit(events.NewAssistantText(itemID, entry.text, entry.final, entry.confidence))
		return
	}
	a.emit(events.NewUserTranscript(itemID, entry.text, entry.final, entry.confidence))
}
