package events

import "github.com/voxtable/voiceorder-core/core/cart"

const (
	// KindStateChanged identifies a checkout state transition.
	KindStateChanged Kind = "state.changed"
	// KindCheckoutConfirmationRequested identifies the start of checkout.
	KindCheckoutConfirmationRequested Kind = "checkout.confirmation.requested"
	// KindCheckoutInitiated identifies checkout navigation being triggered.
	KindCheckoutInitiated Kind = "checkout.initiated"
	// KindCheckoutCancelled identifies a cancelled order.
	KindCheckoutCancelled Kind = "checkout.cancelled"
	// KindCheckoutError identifies a failed checkout precondition.
	KindCheckoutError Kind = "checkout.error"
	// KindSummaryProvided identifies the structured order summary.
	KindSummaryProvided Kind = "summary.provided"
	// KindSummaryText identifies the spoken order summary sentence.
	KindSummaryText Kind = "summary.text"
	// KindSummaryEmpty identifies a review request against an empty cart.
	KindSummaryEmpty Kind = "summary.empty"
)

// StateChanged marks a checkout state transition.
type StateChanged struct {
	Base
	From string
	To   string
}

// NewStateChanged creates a state changed event.
func NewStateChanged(from, to string) StateChanged {
	return StateChanged{Base: NewBase(KindStateChanged), From: from, To: to}
}

// CheckoutConfirmationRequested carries the cart snapshot checkout was
// requested for.
type CheckoutConfirmationRequested struct {
	Base
	Cart cart.Snapshot
}

// NewCheckoutConfirmationRequested creates a checkout confirmation requested event.
func NewCheckoutConfirmationRequested(snapshot cart.Snapshot) CheckoutConfirmationRequested {
	return CheckoutConfirmationRequested{Base: NewBase(KindCheckoutConfirmationRequested), Cart: snapshot}
}

// CheckoutInitiated marks navigation to the checkout destination.
type CheckoutInitiated struct {
	Base
	Route string
}

// NewCheckoutInitiated creates a checkout initiated event.
func NewCheckoutInitiated(route string) CheckoutInitiated {
	return CheckoutInitiated{Base: NewBase(KindCheckoutInitiated), Route: route}
}

// CheckoutCancelled marks a voice-cancelled order.
type CheckoutCancelled struct{ Base }

// NewCheckoutCancelled creates a checkout cancelled event.
func NewCheckoutCancelled() CheckoutCancelled {
	return CheckoutCancelled{Base: NewBase(KindCheckoutCancelled)}
}

// CheckoutError marks a checkout precondition failure.
type CheckoutError struct {
	Base
	Message string
}

// NewCheckoutError creates a checkout error event.
func NewCheckoutError(message string) CheckoutError {
	return CheckoutError{Base: NewBase(KindCheckoutError), Message: message}
}

// SummaryItem is one line of the structured order summary.
type SummaryItem struct {
	Name      string
	Quantity  int
	Modifiers []string
}

// SummaryProvided carries the structured order summary.
type SummaryProvided struct {
	Base
	ItemCount int
	Items     []SummaryItem
	Total     float64
}

// NewSummaryProvided creates a summary provided event.
func NewSummaryProvided(itemCount int, items []SummaryItem, total float64) SummaryProvided {
	return SummaryProvided{Base: NewBase(KindSummaryProvided), ItemCount: itemCount, Items: items, Total: total}
}

// SummaryText carries the human-readable order summary sentence.
type SummaryText struct {
	Base
	Text string
}

// NewSummaryText creates a summary text event.
func NewSummaryText(text string) SummaryText {
	return SummaryText{Base: NewBase(KindSummaryText), Text: text}
}

// SummaryEmpty marks a review request while the cart is empty.
type SummaryEmpty struct{ Base }

// NewSummaryEmpty creates a summary empty event.
func NewSummaryEmpty() SummaryEmpty {
	return SummaryEmpty{Base: NewBase(KindSummaryEmpty)}
}
