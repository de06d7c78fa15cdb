package events

const (
	// KindPaymentMethodSelected identifies a chosen payment method.
	KindPaymentMethodSelected Kind = "payment.method.selected"
	// KindPaymentFeedback identifies spoken feedback for a method selection.
	KindPaymentFeedback Kind = "payment.feedback"
	// KindPaymentSuccess identifies a completed payment.
	KindPaymentSuccess Kind = "payment.success"
	// KindPaymentSuccessFeedback identifies spoken feedback for a completed payment.
	KindPaymentSuccessFeedback Kind = "payment.success.feedback"
	// KindPaymentError identifies a failed payment.
	KindPaymentError Kind = "payment.error"
	// KindPaymentErrorFeedback identifies spoken feedback for a failed payment.
	KindPaymentErrorFeedback Kind = "payment.error.feedback"
)

// PaymentMethodSelected carries the externally selected payment method.
type PaymentMethodSelected struct {
	Base
	Method string
}

// NewPaymentMethodSelected creates a payment method selected event.
func NewPaymentMethodSelected(method string) PaymentMethodSelected {
	return PaymentMethodSelected{Base: NewBase(KindPaymentMethodSelected), Method: method}
}

// PaymentFeedback carries the spoken sentence for a method selection.
type PaymentFeedback struct {
	Base
	Text string
}

// NewPaymentFeedback creates a payment feedback event.
func NewPaymentFeedback(text string) PaymentFeedback {
	return PaymentFeedback{Base: NewBase(KindPaymentFeedback), Text: text}
}

// PaymentSuccess marks a completed payment.
type PaymentSuccess struct {
	Base
	OrderNumber string
}

// NewPaymentSuccess creates a payment success event.
func NewPaymentSuccess(orderNumber string) PaymentSuccess {
	return PaymentSuccess{Base: NewBase(KindPaymentSuccess), OrderNumber: orderNumber}
}

// PaymentSuccessFeedback carries the spoken sentence for a completed payment.
type PaymentSuccessFeedback struct {
	Base
	Text string
}

// NewPaymentSuccessFeedback creates a payment success feedback event.
func NewPaymentSuccessFeedback(text string) PaymentSuccessFeedback {
	return PaymentSuccessFeedback{Base: NewBase(KindPaymentSuccessFeedback), Text: text}
}

// PaymentError marks a failed payment.
type PaymentError struct {
	Base
	Message string
}

// NewPaymentError creates a payment error event.
func NewPaymentError(message string) PaymentError {
	return PaymentError{Base: NewBase(KindPaymentError), Message: message}
}

// PaymentErrorFeedback carries the spoken sentence for a failed payment.
type PaymentErrorFeedback struct {
	Base
	Text string
}

// NewPaymentErrorFeedback creates a payment error feedback event.
func NewPaymentErrorFeedback(text string) PaymentErrorFeedback {
	return PaymentErrorFeedback{Base: NewBase(KindPaymentErrorFeedback), Text: text}
}
