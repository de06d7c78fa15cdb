package pipeline

import "fmt"

// Transport carries raw outbound messages to the realtime service. The
// connection itself is established elsewhere; the pipeline only needs a send
// path and open/close signals.
type Transport interface {
	Send(message []byte) error
}

// transportGate buffers outbound messages until the transport reports ready,
// then flushes them in strict FIFO order. It never reorders and never drops a
// message except through an explicit clear.
type transportGate struct {
	transport Transport
	open      bool
	queue     [][]byte
}

func newTransportGate(transport Transport) *transportGate {
	return &transportGate{transport: transport}
}

func (g *transportGate) setTransport(transport Transport) {
	g.transport = transport
	g.open = false
}

// send delivers immediately while the gate is open, queues otherwise.
func (g *transportGate) send(message []byte) error {
	if !g.open || g.transport == nil {
		g.queue = append(g.queue, message)
		return nil
	}

	if err := g.transport.Send(message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// onOpen flushes the queue FIFO and marks the gate ready for immediate sends
// only once the flush completes. A send failure mid-flush keeps the unsent
// tail queued, failed message included, and leaves the gate closed so later
// sends queue behind the retained tail instead of overtaking it.
func (g *transportGate) onOpen() error {
	if g.transport == nil {
		return fmt.Errorf("no transport attached")
	}

	for len(g.queue) > 0 {
		message := g.queue[0]
		if err := g.transport.Send(message); err != nil {
			g.open = false
			return fmt.Errorf("failed to flush queued message: %w", err)
		}
		g.queue = g.queue[1:]
	}

	g.open = true
	return nil
}

// onClose makes subsequent sends queue again rather than fail.
func (g *transportGate) onClose() {
	g.open = false
}

// clear discards pending queued messages without sending them. Used when
// abandoning a turn.
func (g *transportGate) clear() {
	g.queue = nil
}

func (g *transportGate) pending() int {
	return len(g.queue)
}
