package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Client message types sent to the upstream realtime service.
const (
	TypeResponseCreate         = "response.create"
	TypeSessionUpdate          = "session.update"
	TypeInputAudioBufferAppend = "input_audio_buffer.append"
	TypeConversationItemCreate = "conversation.item.create"
)

// ClientMessage is one outbound control message. Marshalling happens at send
// time; the transport gate treats payloads as opaque.
type ClientMessage interface {
	MessageType() string
}

type clientHeader struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
}

func (h clientHeader) MessageType() string { return h.Type }

func newClientHeader(messageType string) clientHeader {
	return clientHeader{Type: messageType, EventID: uuid.NewString()}
}

// ResponseCreate asks the service to generate an assistant response.
type ResponseCreate struct {
	clientHeader
}

// NewResponseCreate creates a response.create message.
func NewResponseCreate() ResponseCreate {
	return ResponseCreate{clientHeader: newClientHeader(TypeResponseCreate)}
}

// SessionConfig is the session configuration sent on session.update.
type SessionConfig struct {
	Instructions      string           `json:"instructions,omitempty"`
	Modalities        []string         `json:"modalities,omitempty"`
	Voice             string           `json:"voice,omitempty"`
	InputaudioFormat  string           `json:"input_audio_format,omitempty"`
	OutputAudioFormat string           `json:"output_audio_format,omitempty"`
	Tools             []ToolDefinition `json:"tools,omitempty"`
}

// SessionUpdate reconfigures the live session.
type SessionUpdate struct {
	clientHeader
	Session SessionConfig `json:"session"`
}

// NewSessionUpdate creates a session.update message.
func NewSessionUpdate(session SessionConfig) SessionUpdate {
	return SessionUpdate{clientHeader: newClientHeader(TypeSessionUpdate), Session: session}
}

// InputAudioBufferAppend appends base64 audio to the input buffer.
type InputAudioBufferAppend struct {
	clientHeader
	Audio string `json:"audio"`
}

// NewInputAudioBufferAppend creates an input_audio_buffer.append message.
func NewInputAudioBufferAppend(audio string) InputAudioBufferAppend {
	return InputAudioBufferAppend{clientHeader: newClientHeader(TypeInputAudioBufferAppend), Audio: audio}
}

// ConversationItemCreate injects a conversation item, e.g. a text prompt.
type ConversationItemCreate struct {
	clientHeader
	Item ClientConversationItem `json:"item"`
}

// ClientConversationItem is the item payload of conversation.item.create.
type ClientConversationItem struct {
	Type    string             `json:"type"`
	Role    string             `json:"role"`
	Content []ItemContentChunk `json:"content,omitempty"`
}

// ItemContentChunk is one content chunk of a client conversation item.
type ItemContentChunk struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// NewConversationItemCreate creates a conversation.item.create message
// carrying one user text chunk.
func NewConversationItemCreate(role, text string) ConversationItemCreate {
	return ConversationItemCreate{
		clientHeader: newClientHeader(TypeConversationItemCreate),
		Item: ClientConversationItem{
			Type:    "message",
			Role:    role,
			Content: []ItemContentChunk{{Type: "input_text", Text: text}},
		},
	}
}

// EncodeClient marshals an outbound message to its wire form.
func EncodeClient(message ClientMessage) ([]byte, error) {
	raw, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s message: %w", message.MessageType(), err)
	}
	return raw, nil
}
