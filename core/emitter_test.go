package pipeline

import (
	"testing"

	"github.com/voxtable/voiceorder-core/core/events"
)

func TestEmitterDeliversToSubscribedKindOnly(t *testing.T) {
	emitter := NewEmitter()

	transcripts := 0
	orders := 0
	emitter.Subscribe(events.KindUserTranscript, func(events.Event) { transcripts++ })
	emitter.Subscribe(events.KindOrderDetected, func(events.Event) { orders++ })

	emitter.Emit(events.NewUserTranscript("item_1", "hello", false, 0))

	if transcripts != 1 || orders != 0 {
		t.Fatalf("expected only the transcript handler to fire, got %d/%d", transcripts, orders)
	}
}

func TestEmitterUnsubscribeStopsDelivery(t *testing.T) {
	emitter := NewEmitter()

	calls := 0
	unsubscribe := emitter.Subscribe(events.KindSpeechStarted, func(events.Event) { calls++ })

	emitter.Emit(events.NewSpeechStarted())
	unsubscribe()
	unsubscribe() // second call is a no-op
	emitter.Emit(events.NewSpeechStarted())

	if calls != 1 {
		t.Fatalf("expected one delivery, got %d", calls)
	}
	if emitter.ListenerCount() != 0 {
		t.Fatalf("expected zero listeners, got %d", emitter.ListenerCount())
	}
}

func TestEmitterDeliversInSubscriptionOrder(t *testing.T) {
	emitter := NewEmitter()

	order := []string{}
	emitter.Subscribe(events.KindSpeechStarted, func(events.Event) { order = append(order, "first") })
	emitter.Subscribe(events.KindSpeechStarted, func(events.Event) { order = append(order, "second") })
	emitter.Subscribe(events.KindSpeechStarted, func(events.Event) { order = append(order, "third") })

	emitter.Emit(events.NewSpeechStarted())

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("expected subscription-order delivery, got %v", order)
	}
}

func TestEmitterCloseDetachesEverything(t *testing.T) {
	emitter := NewEmitter()

	calls := 0
	emitter.Subscribe(events.KindSpeechStarted, func(events.Event) { calls++ })
	emitter.Subscribe(events.KindOrderDetected, func(events.Event) { calls++ })

	emitter.Close()
	emitter.Emit(events.NewSpeechStarted())

	if calls != 0 || emitter.ListenerCount() != 0 {
		t.Fatalf("expected no deliveries after close, calls=%d listeners=%d", calls, emitter.ListenerCount())
	}
}
