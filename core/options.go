package pipeline

import "github.com/voxtable/voiceorder-core/core/menu"

// Option configures a pipeline.
type Option func(*Pipeline)

// WithCatalog supplies the menu snapshot the matcher is built from. Swap in a
// new snapshot with SetCatalog when the menu changes.
func WithCatalog(catalog []menu.Item) Option {
	return func(p *Pipeline) {
		p.interpreter.setMatcher(menu.NewMatcher(catalog))
	}
}

// WithTransport attaches the outbound transport. The gate stays closed until
// OnTransportOpen is called.
func WithTransport(transport Transport) Option {
	return func(p *Pipeline) {
		p.gate.setTransport(transport)
	}
}

// WithCheckout replaces the default checkout orchestrator.
func WithCheckout(orchestrator *CheckoutOrchestrator) Option {
	return func(p *Pipeline) {
		p.checkout = orchestrator
	}
}
