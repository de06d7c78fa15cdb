package events

const (
	// KindOrderDetected identifies a parsed add-to-order command.
	KindOrderDetected Kind = "order.detected"
	// KindOrderConfirmation identifies a parsed order confirmation command.
	KindOrderConfirmation Kind = "order.confirmation"
	// KindOrderItemRemoved identifies a parsed remove-from-order command.
	KindOrderItemRemoved Kind = "order.item.removed"
	// KindOrderUnmatched identifies spoken items with no usable catalog match,
	// aggregated into a single report per command.
	KindOrderUnmatched Kind = "order.unmatched"
)

// ConfirmAction is the confirmation intent carried by a confirm_order call.
type ConfirmAction string

const (
	ConfirmActionCheckout ConfirmAction = "checkout"
	ConfirmActionReview   ConfirmAction = "review"
	ConfirmActionCancel   ConfirmAction = "cancel"
)

// OrderItem is a spoken item resolved against the catalog.
type OrderItem struct {
	SpokenName  string
	CatalogID   string
	CatalogName string
	Confidence  float64
	Quantity    int
	Modifiers   []string
}

// OrderDetected carries the items extracted from one add_to_order call.
// Confidence is the fixed extraction confidence, distinct from the per-item
// match confidence. Unmatched lists spoken names with no usable match.
type OrderDetected struct {
	Base
	Items      []OrderItem
	Unmatched  []string
	Confidence float64
}

// NewOrderDetected creates an order detected event.
func NewOrderDetected(items []OrderItem, unmatched []string, confidence float64) OrderDetected {
	return OrderDetected{Base: NewBase(KindOrderDetected), Items: items, Unmatched: unmatched, Confidence: confidence}
}

// OrderConfirmation carries a confirmation command.
type OrderConfirmation struct {
	Base
	Action ConfirmAction
}

// NewOrderConfirmation creates an order confirmation event.
func NewOrderConfirmation(action ConfirmAction) OrderConfirmation {
	return OrderConfirmation{Base: NewBase(KindOrderConfirmation), Action: action}
}

// OrderItemRemoved carries a remove-from-order command.
type OrderItemRemoved struct {
	Base
	ItemName string
	Quantity int
}

// NewOrderItemRemoved creates an order item removed event.
func NewOrderItemRemoved(itemName string, quantity int) OrderItemRemoved {
	return OrderItemRemoved{Base: NewBase(KindOrderItemRemoved), ItemName: itemName, Quantity: quantity}
}

// OrderUnmatched carries the aggregate report of unmatched spoken items.
type OrderUnmatched struct {
	Base
	Names   []string
	Message string
}

// NewOrderUnmatched creates an order unmatched event.
func NewOrderUnmatched(names []string, message string) OrderUnmatched {
	return OrderUnmatched{Base: NewBase(KindOrderUnmatched), Names: names, Message: message}
}
