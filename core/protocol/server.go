// Package protocol defines the wire contract of the realtime ordering
// service: inbound server events decoded into a tagged union, outbound client
// messages, and the schemas of the order functions the assistant may call.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Server event types emitted by the upstream realtime service.
const (
	TypeSessionCreated                   = "session.created"
	TypeSessionUpdated                   = "session.updated"
	TypeConversationItemCreated          = "conversation.item.created"
	TypeResponseAudioTranscriptDelta     = "response.audio_transcript.delta"
	TypeInputAudioTranscriptionDelta     = "conversation.item.input_audio_transcription.delta"
	TypeInputAudioTranscriptionCompleted = "conversation.item.input_audio_transcription.completed"
	TypeFunctionCallArgumentsDone        = "response.function_call_arguments.done"
	TypeInputSpeechStarted               = "input_audio_buffer.speech_started"
	TypeResponseCreated                  = "response.created"
	TypeResponseDone                     = "response.done"
	TypeError                            = "error"
)

// Error codes the router splits into named notifications.
const (
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeSessionExpired    = "session_expired"
)

// ServerEvent is one decoded inbound protocol event. Identity is the event id;
// the router deduplicates on it.
type ServerEvent interface {
	EventType() string
	EventID() string
}

// Header carries the fields common to every server event.
type Header struct {
	Type string `json:"type"`
	ID   string `json:"event_id"`
}

func (h Header) EventType() string { return h.Type }
func (h Header) EventID() string   { return h.ID }

// SessionCreated carries the raw session object of a new session.
type SessionCreated struct {
	Header
	Session json.RawMessage `json:"session"`
}

// SessionUpdated carries the raw session object after an update.
type SessionUpdated struct {
	Header
	Session json.RawMessage `json:"session"`
}

// ConversationItem is the item object of a conversation.item.created event.
type ConversationItem struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// ConversationItemCreated announces a new conversation item.
type ConversationItemCreated struct {
	Header
	Item ConversationItem `json:"item"`
}

// ResponseAudioTranscriptDelta carries an assistant transcript fragment.
type ResponseAudioTranscriptDelta struct {
	Header
	ItemID string `json:"item_id"`
	Delta  string `json:"delta"`
}

// InputAudioTranscriptionDelta carries a user transcript fragment.
type InputAudioTranscriptionDelta struct {
	Header
	ItemID string `json:"item_id"`
	Delta  string `json:"delta"`
}

// InputAudioTranscriptionCompleted carries the authoritative full user
// transcript for an item.
type InputAudioTranscriptionCompleted struct {
	Header
	ItemID     string `json:"item_id"`
	Transcript string `json:"transcript"`
}

// FunctionCallArgumentsDone carries a completed function call. Arguments is a
// JSON string as received; it is parsed by the command interpreter, not here.
type FunctionCallArgumentsDone struct {
	Header
	CallID    string `json:"call_id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// InputSpeechStarted announces detected user speech in the input buffer.
type InputSpeechStarted struct {
	Header
}

// ResponseCreated announces the start of an assistant response.
type ResponseCreated struct {
	Header
	Response json.RawMessage `json:"response"`
}

// ResponseDone announces the end of an assistant response and completes the
// current turn.
type ResponseDone struct {
	Header
	Response json.RawMessage `json:"response"`
}

// ErrorDetail is the error object of an error event.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServerError carries an upstream-declared error.
type ServerError struct {
	Header
	Error ErrorDetail `json:"error"`
}

// Unknown preserves events of types this module does not know. They are
// accepted without error for forward compatibility.
type Unknown struct {
	Header
	Raw json.RawMessage
}

// DecodeServer parses one raw inbound message into its typed variant. A
// payload that is not a JSON object with a type field is a transport-level
// malformed payload and yields an error; unknown types decode into Unknown.
func DecodeServer(raw []byte) (ServerEvent, error) {
	var header Header
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("failed to parse event envelope: %w", err)
	}
	if header.Type == "" {
		return nil, fmt.Errorf("event envelope has no type")
	}

	decode := func(event ServerEvent) (ServerEvent, error) {
		if err := json.Unmarshal(raw, event); err != nil {
			return nil, fmt.Errorf("failed to parse %s event: %w", header.Type, err)
		}
		return event, nil
	}

	switch header.Type {
	case TypeSessionCreated:
		return decode(&SessionCreated{})
	case TypeSessionUpdated:
		return decode(&SessionUpdated{})
	case TypeConversationItemCreated:
		return decode(&ConversationItemCreated{})
	case TypeResponseAudioTranscriptDelta:
		return decode(&ResponseAudioTranscriptDelta{})
	case TypeInputAudioTranscriptionDelta:
		return decode(&InputAudioTranscriptionDelta{})
	case TypeInputAudioTranscriptionCompleted:
		return decode(&InputAudioTranscriptionCompleted{})
	case TypeFunctionCallArgumentsDone:
		return decode(&FunctionCallArgumentsDone{})
	case TypeInputSpeechStarted:
		return decode(&InputSpeechStarted{})
	case TypeResponseCreated:
		return decode(&ResponseCreated{})
	case TypeResponseDone:
		return decode(&ResponseDone{})
	case TypeError:
		return decode(&ServerError{})
	default:
		return &Unknown{Header: header, Raw: raw}, nil
	}
}
