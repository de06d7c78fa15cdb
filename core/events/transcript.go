package events

const (
	// KindUserTranscript identifies user transcript updates, partial or final.
	KindUserTranscript Kind = "transcript"
	// KindAssistantText identifies assistant response text updates.
	KindAssistantText Kind = "response.text"
)

// UserTranscript carries the accumulated user transcript for one conversation
// item. Partial events carry the full text so far; the final event replaces it
// with the authoritative transcript.
type UserTranscript struct {
	Base
	ItemID     string
	Text       string
	IsFinal    bool
	Confidence float64
}

// NewUserTranscript creates a user transcript event.
func NewUserTranscript(itemID, text string, isFinal bool, confidence float64) UserTranscript {
	return UserTranscript{Base: NewBase(KindUserTranscript), ItemID: itemID, Text: text, IsFinal: isFinal, Confidence: confidence}
}

// AssistantText carries the accumulated assistant response text for one
// conversation item.
type AssistantText struct {
	Base
	ItemID     string
	Text       string
	IsFinal    bool
	Confidence float64
}

// NewAssistantText creates an assistant text event.
func NewAssistantText(itemID, text string, isFinal bool, confidence float64) AssistantText {
	return AssistantText{Base: NewBase(KindAssistantText), ItemID: itemID, Text: text, IsFinal: isFinal, Confidence: confidence}
}
