package pipeline

import (
	"fmt"
	"testing"
)

type transportStub struct {
	sent [][]byte
	fail bool
}

func (t *transportStub) Send(message []byte) error {
	if t.fail {
		return fmt.Errorf("transport down")
	}
	t.sent = append(t.sent, message)
	return nil
}

func TestGateFlushesQueuedMessagesFIFO(t *testing.T) {
	transport := &transportStub{}
	gate := newTransportGate(transport)

	for _, message := range []string{"first", "second", "third"} {
		if err := gate.send([]byte(message)); err != nil {
			t.Fatalf("expected queued send to succeed, got %v", err)
		}
	}
	if len(transport.sent) != 0 {
		t.Fatalf("expected nothing sent while closed, got %d", len(transport.sent))
	}

	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected flush to succeed, got %v", err)
	}

	if len(transport.sent) != 3 {
		t.Fatalf("expected three flushed messages, got %d", len(transport.sent))
	}
	for i, expected := range []string{"first", "second", "third"} {
		if string(transport.sent[i]) != expected {
			t.Fatalf("expected message %d to be %q, got %q", i, expected, transport.sent[i])
		}
	}
}

func TestGateSendsImmediatelyWhileOpen(t *testing.T) {
	transport := &transportStub{}
	gate := newTransportGate(transport)

	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected open to succeed, got %v", err)
	}
	if err := gate.send([]byte("now")); err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}

	if len(transport.sent) != 1 || string(transport.sent[0]) != "now" {
		t.Fatalf("expected immediate send, got %v", transport.sent)
	}
	if gate.pending() != 0 {
		t.Fatalf("expected empty queue, got %d", gate.pending())
	}
}

func TestGateQueuesAgainAfterClose(t *testing.T) {
	transport := &transportStub{}
	gate := newTransportGate(transport)

	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected open to succeed, got %v", err)
	}
	gate.onClose()

	if err := gate.send([]byte("later")); err != nil {
		t.Fatalf("expected send after close to queue, got %v", err)
	}
	if len(transport.sent) != 0 || gate.pending() != 1 {
		t.Fatalf("expected message queued, sent=%d pending=%d", len(transport.sent), gate.pending())
	}
}

func TestGateClearDiscardsPendingOnly(t *testing.T) {
	transport := &transportStub{}
	gate := newTransportGate(transport)

	_ = gate.send([]byte("abandoned"))
	gate.clear()

	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected open to succeed, got %v", err)
	}
	if len(transport.sent) != 0 {
		t.Fatalf("expected cleared message to never send, got %v", transport.sent)
	}
}

func TestGateKeepsUnsentTailOnFlushFailure(t *testing.T) {
	transport := &transportStub{fail: true}
	gate := newTransportGate(transport)

	_ = gate.send([]byte("first"))
	_ = gate.send([]byte("second"))

	if err := gate.onOpen(); err == nil {
		t.Fatalf("expected flush to report the failure")
	}
	if gate.pending() != 2 {
		t.Fatalf("expected both messages retained, got %d", gate.pending())
	}

	transport.fail = false
	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected retry flush to succeed, got %v", err)
	}
	if len(transport.sent) != 2 || string(transport.sent[0]) != "first" {
		t.Fatalf("expected retained messages flushed in order, got %v", transport.sent)
	}
}

func TestGateQueuesSendsBehindRetainedTailAfterFailedFlush(t *testing.T) {
	transport := &transportStub{fail: true}
	gate := newTransportGate(transport)

	_ = gate.send([]byte("first"))
	_ = gate.send([]byte("second"))

	if err := gate.onOpen(); err == nil {
		t.Fatalf("expected flush to report the failure")
	}

	// The gate must not report ready while earlier messages are still queued;
	// a new send has to line up behind them.
	if err := gate.send([]byte("third")); err != nil {
		t.Fatalf("expected send after failed flush to queue, got %v", err)
	}
	if len(transport.sent) != 0 || gate.pending() != 3 {
		t.Fatalf("expected all three messages queued, sent=%d pending=%d", len(transport.sent), gate.pending())
	}

	transport.fail = false
	if err := gate.onOpen(); err != nil {
		t.Fatalf("expected retry flush to succeed, got %v", err)
	}

	delivered := []string{}
	for _, message := range transport.sent {
		delivered = append(delivered, string(message))
	}
	if len(delivered) != 3 || delivered[0] != "first" || delivered[1] != "second" || delivered[2] != "third" {
		t.Fatalf("expected arrival order preserved through the failed flush, got %v", delivered)
	}
}
