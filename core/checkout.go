package pipeline

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/voxtable/voiceorder-core/core/cart"
	"github.com/voxtable/voiceorder-core/core/events"
)

// CheckoutState is the stage of the checkout orchestration state machine.
type CheckoutState string

const (
	CheckoutIdle        CheckoutState = "idle"
	CheckoutReviewing   CheckoutState = "reviewing"
	CheckoutCheckingOut CheckoutState = "checkingOut"
	CheckoutCancelled   CheckoutState = "cancelled"
)

// Destination routes handed to the navigation collaborator.
const (
	CheckoutRoute     = "/checkout"
	ConfirmationRoute = "/order-confirmation"
)

// defaultCheckoutDelay leaves room for the spoken confirmation to finish
// before navigation fires.
const defaultCheckoutDelay = 2 * time.Second

// Navigator is the external navigation collaborator.
type Navigator interface {
	Navigate(route string, state map[string]any)
}

// Toaster is the external toast collaborator.
type Toaster interface {
	Toast(message, severity string)
}

// Toast severities understood by the collaborator.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// CheckoutOrchestrator reacts to confirmed voice commands by driving checkout
// state, voice feedback and navigation. It is constructed once per checkout
// attempt; Destroy detaches every subscription so reuse cannot leak listeners
// across attempts.
type CheckoutOrchestrator struct {
	mu sync.Mutex

	state        CheckoutState
	cartSnapshot cart.Snapshot

	emitter   *Emitter
	navigator Navigator
	toaster   Toaster

	// timer generation invalidates scheduled continuations on reset
	delay    time.Duration
	timer    *time.Timer
	timerGen int

	detach []func()
}

// CheckoutOption configures a checkout orchestrator.
type CheckoutOption func(*CheckoutOrchestrator)

// WithNavigator sets the navigation collaborator.
func WithNavigator(navigator Navigator) CheckoutOption {
	return func(c *CheckoutOrchestrator) { c.navigator = navigator }
}

// WithToaster sets the toast collaborator.
func WithToaster(toaster Toaster) CheckoutOption {
	return func(c *CheckoutOrchestrator) { c.toaster = toaster }
}

// WithCheckoutDelay overrides the pause between requesting checkout
// confirmation and navigating.
func WithCheckoutDelay(delay time.Duration) CheckoutOption {
	return func(c *CheckoutOrchestrator) { c.delay = delay }
}

// NewCheckoutOrchestrator creates an idle orchestrator with its own emitter.
func NewCheckoutOrchestrator(opts ...CheckoutOption) *CheckoutOrchestrator {
	orchestrator := &CheckoutOrchestrator{
		state:   CheckoutIdle,
		emitter: NewEmitter(),
		delay:   defaultCheckoutDelay,
	}
	for _, opt := range opts {
		opt(orchestrator)
	}
	return orchestrator
}

// Subscribe registers a handler for one notification kind and returns its
// unsubscribe closure.
func (c *CheckoutOrchestrator) Subscribe(kind events.Kind, handler Handler) func() {
	return c.emitter.Subscribe(kind, handler)
}

// State returns the current checkout state.
func (c *CheckoutOrchestrator) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UpdateCart replaces the orchestrator's cart snapshot. This is the only way
// cart contents enter the orchestrator; protocol events never touch it
// directly.
func (c *CheckoutOrchestrator) UpdateCart(snapshot cart.Snapshot) error {
	copied := cart.Snapshot{}
	if err := copier.CopyWithOption(&copied, &snapshot, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("failed to copy cart snapshot: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartSnapshot = copied
	return nil
}

// HandleConfirmation drives the state machine from one confirmation command.
func (c *CheckoutOrchestrator) HandleConfirmation(action events.ConfirmAction) {
	switch action {
	case events.ConfirmActionReview:
		c.handleReview()
	case events.ConfirmActionCheckout:
		c.handleCheckout()
	case events.ConfirmActionCancel:
		c.handleCancel()
	}
}

func (c *CheckoutOrchestrator) handleReview() {
	c.mu.Lock()
	if c.cartSnapshot.Empty() {
		c.mu.Unlock()
		c.emitter.Emit(events.NewSummaryEmpty())
		return
	}

	from := c.state
	c.state = CheckoutReviewing
	snapshot := c.cartSnapshot
	c.mu.Unlock()

	summaryItems := make([]events.SummaryItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		summaryItems = append(summaryItems, events.SummaryItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Modifiers: item.Modifiers,
		})
	}

	c.emitter.Emit(events.NewSummaryProvided(snapshot.ItemCount(), summaryItems, snapshot.Total))
	c.emitter.Emit(events.NewSummaryText(summarySentence(snapshot)))
	c.emitter.Emit(events.NewStateChanged(string(from), string(CheckoutReviewing)))
}

func (c *CheckoutOrchestrator) handleCheckout() {
	c.mu.Lock()
	if c.cartSnapshot.Empty() {
		c.mu.Unlock()
		c.toast("No items in cart to checkout", ToastError)
		c.emitter.Emit(events.NewCheckoutError("No items in cart to checkout"))
		return
	}

	c.state = CheckoutCheckingOut
	snapshot := c.cartSnapshot

	c.timerGen++
	generation := c.timerGen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() { c.initiateCheckout(generation) })
	c.mu.Unlock()

	c.emitter.Emit(events.NewCheckoutConfirmationRequested(snapshot))
}

// initiateCheckout is the scheduled continuation of handleCheckout. The
// generation check invalidates it when Reset or Destroy ran in the interim,
// so a stale navigation never fires on a reused orchestrator.
func (c *CheckoutOrchestrator) initiateCheckout(generation int) {
	c.mu.Lock()
	if generation != c.timerGen || c.state != CheckoutCheckingOut {
		c.mu.Unlock()
		return
	}
	snapshot := c.cartSnapshot
	c.mu.Unlock()

	if c.navigator != nil {
		c.navigator.Navigate(CheckoutRoute, map[string]any{
			"cart":         snapshot,
			"isVoiceOrder": true,
		})
	}
	c.emitter.Emit(events.NewCheckoutInitiated(CheckoutRoute))
}

func (c *CheckoutOrchestrator) handleCancel() {
	c.mu.Lock()
	c.state = CheckoutIdle
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.toast("Order cancelled", ToastSuccess)
	c.emitter.Emit(events.NewCheckoutCancelled())
}

// HandlePaymentMethodSelection surfaces an externally selected payment method
// with a method-specific spoken feedback sentence.
func (c *CheckoutOrchestrator) HandlePaymentMethodSelection(method string) {
	c.emitter.Emit(events.NewPaymentMethodSelected(method))

	var feedback string
	switch method {
	case "card":
		feedback = "Please enter your card details to complete the order."
	case "cash":
		feedback = "Please pay at the counter when you pick up your order."
	default:
		feedback = fmt.Sprintf("You selected %s as your payment method.", method)
	}
	c.emitter.Emit(events.NewPaymentFeedback(feedback))
}

// HandlePaymentSuccess navigates to the confirmation route with the order
// data marked as a voice order and emits success feedback.
func (c *CheckoutOrchestrator) HandlePaymentSuccess(orderData map[string]any) {
	state := make(map[string]any, len(orderData)+1)
	for key, value := range orderData {
		state[key] = value
	}
	state["isVoiceOrder"] = true

	if c.navigator != nil {
		c.navigator.Navigate(ConfirmationRoute, state)
	}

	orderNumber, _ := orderData["orderNumber"].(string)
	c.emitter.Emit(events.NewPaymentSuccess(orderNumber))
	c.emitter.Emit(events.NewPaymentSuccessFeedback(
		fmt.Sprintf("Your order %s has been placed. Thank you!", orderNumber)))
}

// HandlePaymentError surfaces a failed payment as a toast plus error feedback.
func (c *CheckoutOrchestrator) HandlePaymentError(message string) {
	c.toast(message, ToastError)
	c.emitter.Emit(events.NewPaymentError(message))
	c.emitter.Emit(events.NewPaymentErrorFeedback(
		"There was a problem processing your payment: " + message))
}

// Reset returns to idle unconditionally and invalidates any scheduled
// checkout continuation. Safe to call at any point, including mid-checkout.
func (c *CheckoutOrchestrator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = CheckoutIdle
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Destroy resets and detaches every listener, own subscribers and external
// subscriptions alike. The listener count is zero afterwards.
func (c *CheckoutOrchestrator) Destroy() {
	c.Reset()

	c.mu.Lock()
	detach := c.detach
	c.detach = nil
	c.mu.Unlock()

	for _, unsubscribe := range detach {
		unsubscribe()
	}
	c.emitter.Close()
}

// ListenerCount reports live subscriptions on the orchestrator's emitter.
func (c *CheckoutOrchestrator) ListenerCount() int {
	return c.emitter.ListenerCount()
}

// attachTo subscribes the orchestrator to confirmation commands on the given
// emitter and remembers the unsubscribe for Destroy.
func (c *CheckoutOrchestrator) attachTo(emitter *Emitter) {
	unsubscribe := emitter.Subscribe(events.KindOrderConfirmation, func(event events.Event) {
		if confirmation, ok := event.(events.OrderConfirmation); ok {
			c.HandleConfirmation(confirmation.Action)
		}
	})

	c.mu.Lock()
	c.detach = append(c.detach, unsubscribe)
	c.mu.Unlock()
}

func (c *CheckoutOrchestrator) toast(message, severity string) {
	if c.toaster == nil {
		return
	}
	c.toaster.Toast(message, severity)
}

// summarySentence renders the spoken order summary, e.g. "Your order has 3
// items: 2x Burger, 1x Coke, total $46.41".
func summarySentence(snapshot cart.Snapshot) string {
	parts := make([]string, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		parts = append(parts, fmt.Sprintf("%dx %s", quantity, item.Name))
	}

	return fmt.Sprintf("Your order has %d items: %s, total $%.2f",
		snapshot.ItemCount(), strings.Join(parts, ", "), snapshot.Total)
}
