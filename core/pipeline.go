// Package pipeline implements the voice-ordering event pipeline: a router
// that consumes realtime protocol events with deduplication and turn-state
// tracking, transcript aggregation, order-command extraction with fuzzy menu
// matching, an outbound transport gate, and the checkout orchestration the
// extracted commands drive.
package pipeline

import (
	"context"

	"github.com/voxtable/voiceorder-core/core/events"
	"github.com/voxtable/voiceorder-core/core/menu"
	"github.com/voxtable/voiceorder-core/core/protocol"
	"go.opentelemetry.io/otel/codes"
)

// Pipeline wires the event router to its consumers. All event processing runs
// on the single logical thread of the transport callback; each event is
// processed to completion before the next is dispatched.
type Pipeline struct {
	emitter     *Emitter
	dedup       *dedupWindow
	turn        turnTracker
	transcripts *transcriptAggregator
	interpreter *commandInterpreter
	gate        *transportGate
	checkout    *CheckoutOrchestrator
}

// New creates a pipeline. Without WithCatalog every spoken item reports as
// unmatched; without WithTransport outbound messages queue until a transport
// is attached and opened.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		emitter: NewEmitter(),
		dedup:   newDedupWindow(dedupWindowSize),
		turn:    newTurnTracker(),
		gate:    newTransportGate(nil),
	}
	p.transcripts = newTranscriptAggregator(p.emitter.Emit)
	p.interpreter = newCommandInterpreter(nil, p.emitter.Emit)

	for _, opt := range opts {
		opt(p)
	}

	if p.checkout == nil {
		p.checkout = NewCheckoutOrchestrator()
	}
	p.checkout.attachTo(p.emitter)

	return p
}

// Subscribe registers a handler for one notification kind and returns its
// unsubscribe closure.
func (p *Pipeline) Subscribe(kind events.Kind, handler Handler) func() {
	return p.emitter.Subscribe(kind, handler)
}

// Checkout exposes the checkout orchestrator for cart updates, payment
// callbacks and checkout-level subscriptions.
func (p *Pipeline) Checkout() *CheckoutOrchestrator {
	return p.checkout
}

// SetCatalog rebuilds the menu matcher from a new catalog snapshot.
func (p *Pipeline) SetCatalog(catalog []menu.Item) {
	p.interpreter.setMatcher(menu.NewMatcher(catalog))
}

// SetTurnState applies an owner-driven turn transition.
func (p *Pipeline) SetTurnState(state TurnState) {
	p.turn.set(state)
}

// Turn returns a snapshot of the current turn.
func (p *Pipeline) Turn() TurnSnapshot {
	return p.turn.snapshot()
}

// HandleRaw is the transport boundary. Payloads that fail structural parsing
// are logged and dropped without advancing any state.
func (p *Pipeline) HandleRaw(ctx context.Context, raw []byte) {
	ctx, span := tracer.Start(ctx, "handle realtime event")
	defer span.End()

	event, err := protocol.DecodeServer(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("dropping malformed realtime payload", "error", err)
		return
	}

	p.HandleEvent(ctx, event)
}

// HandleEvent routes one decoded protocol event. Idempotent under
// retransmission: a duplicate event id is discarded with no side effects.
func (p *Pipeline) HandleEvent(ctx context.Context, event protocol.ServerEvent) {
	if !p.dedup.observe(event.EventID()) {
		return
	}

	p.turn.advance()

	switch typedEvent := event.(type) {
	case *protocol.SessionCreated:
		p.emitter.Emit(events.NewSessionCreated(typedEvent.Session))
	case *protocol.SessionUpdated:
		p.emitter.Emit(events.NewSessionUpdated(typedEvent.Session))
	case *protocol.ConversationItemCreated:
		p.transcripts.startItem(typedEvent.Item.ID, typedEvent.Item.Role)
	case *protocol.ResponseAudioTranscriptDelta:
		p.transcripts.appendDelta(typedEvent.ItemID, roleAssistant, typedEvent.Delta)
	case *protocol.InputAudioTranscriptionDelta:
		p.transcripts.appendDelta(typedEvent.ItemID, roleUser, typedEvent.Delta)
	case *protocol.InputAudioTranscriptionCompleted:
		p.transcripts.finalize(typedEvent.ItemID, roleUser, typedEvent.Transcript)
	case *protocol.FunctionCallArgumentsDone:
		p.interpreter.handleFunctionCall(typedEvent.Name, typedEvent.Arguments)
	case *protocol.InputSpeechStarted:
		// Only meaningful while the owner has the turn in recording;
		// suppressed otherwise.
		if p.turn.state == TurnRecording {
			p.emitter.Emit(events.NewSpeechStarted())
		}
	case *protocol.ResponseCreated:
		// Bookkeeping only; the turn owner moved us to waiting_response.
	case *protocol.ResponseDone:
		p.turn.complete()
		p.emitter.Emit(events.NewResponseComplete(typedEvent.Response))
	case *protocol.ServerError:
		p.emitter.Emit(events.NewSessionError(typedEvent.Error.Code, typedEvent.Error.Message))
		switch typedEvent.Error.Code {
		case protocol.ErrorCodeRateLimitExceeded:
			p.emitter.Emit(events.NewRateLimitError(typedEvent.Error.Message))
		case protocol.ErrorCodeSessionExpired:
			p.emitter.Emit(events.NewSessionExpired(typedEvent.Error.Message))
		}
	case *protocol.Unknown:
		// Accepted for forward compatibility; advances the event index only.
	}
}

// Send routes one outbound control message through the transport gate.
func (p *Pipeline) Send(message protocol.ClientMessage) error {
	raw, err := protocol.EncodeClient(message)
	if err != nil {
		return err
	}
	return p.gate.send(raw)
}

// RequestResponse asks the upstream service to generate a response.
func (p *Pipeline) RequestResponse() error {
	return p.Send(protocol.NewResponseCreate())
}

// ConfigureSession sends the session configuration, attaching the order tools
// when the caller supplied none.
func (p *Pipeline) ConfigureSession(config protocol.SessionConfig) error {
	if len(config.Tools) == 0 {
		config.Tools = protocol.OrderTools()
	}
	return p.Send(protocol.NewSessionUpdate(config))
}

// AppendAudio forwards one base64 audio chunk to the input buffer.
func (p *Pipeline) AppendAudio(audio string) error {
	return p.Send(protocol.NewInputAudioBufferAppend(audio))
}

// OnTransportOpen flushes queued outbound messages FIFO and marks the gate
// ready.
func (p *Pipeline) OnTransportOpen() error {
	return p.gate.onOpen()
}

// OnTransportClose makes subsequent sends queue until the transport reopens.
func (p *Pipeline) OnTransportClose() {
	p.gate.onClose()
}

// Reset is the universal cancellation primitive: it synchronously clears turn
// state, transcripts and the outbound queue, and resets the checkout
// orchestrator. Safe to call at any point, including mid-turn. The dedup
// window survives so retransmissions of already processed events stay
// deduplicated.
func (p *Pipeline) Reset() {
	p.turn.reset()
	p.transcripts.reset()
	p.gate.clear()
	p.checkout.Reset()
}

// Close resets the pipeline and detaches every subscription, checkout
// listeners included.
func (p *Pipeline) Close() {
	p.Reset()
	p.dedup.reset()
	p.checkout.Destroy()
	p.emitter.Close()
}
