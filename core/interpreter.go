package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/voxtable/voiceorder-core/core/events"
	"github.com/voxtable/voiceorder-core/core/menu"
	"github.com/voxtable/voiceorder-core/core/protocol"
)

// extractionConfidence is the flat confidence stamped on extracted order
// commands. It represents extraction confidence, distinct from each item's
// match confidence, and is a fixed stand-in rather than a computed score.
const extractionConfidence = 0.95

// commandInterpreter turns completed function calls into structured order
// command events. Argument parse failures are logged and emit nothing so a
// garbled call never corrupts the order or ends the session.
type commandInterpreter struct {
	matcher *menu.Matcher
	emit    func(events.Event)
}

func newCommandInterpreter(matcher *menu.Matcher, emit func(events.Event)) *commandInterpreter {
	return &commandInterpreter{matcher: matcher, emit: emit}
}

// setMatcher swaps in a matcher rebuilt from a new catalog snapshot.
func (i *commandInterpreter) setMatcher(matcher *menu.Matcher) {
	i.matcher = matcher
}

func (i *commandInterpreter) handleFunctionCall(name, arguments string) {
	switch name {
	case protocol.FunctionAddToOrder:
		i.handleAddToOrder(arguments)
	case protocol.FunctionConfirmOrder:
		i.handleConfirmOrder(arguments)
	case protocol.FunctionRemoveFromOrder:
		i.handleRemoveFromOrder(arguments)
	default:
		// Unknown function names are future commands, not errors.
	}
}

func (i *commandInterpreter) handleAddToOrder(arguments string) {
	var args protocol.AddToOrderArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		logger.Error("failed to parse add_to_order arguments", "error", err)
		return
	}
	if len(args.Items) == 0 {
		return
	}

	matched := []events.OrderItem{}
	unmatched := []string{}
	for _, spoken := range args.Items {
		quantity := spoken.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		match := i.match(spoken.Name)
		if match.Item == nil || match.Confidence < menu.Threshold {
			unmatched = append(unmatched, spoken.Name)
			continue
		}

		matched = append(matched, events.OrderItem{
			SpokenName:  spoken.Name,
			CatalogID:   match.Item.ID,
			CatalogName: match.Item.Name,
			Confidence:  match.Confidence,
			Quantity:    quantity,
			Modifiers:   spoken.Modifiers,
		})
	}

	i.emit(events.NewOrderDetected(matched, unmatched, extractionConfidence))

	if len(unmatched) > 0 {
		message := "could not find: " + strings.Join(unmatched, ", ")
		i.emit(events.NewOrderUnmatched(unmatched, message))
	}
}

func (i *commandInterpreter) handleConfirmOrder(arguments string) {
	var args protocol.ConfirmOrderArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		logger.Error("failed to parse confirm_order arguments", "error", err)
		return
	}

	switch action := events.ConfirmAction(args.Action); action {
	case events.ConfirmActionCheckout, events.ConfirmActionReview, events.ConfirmActionCancel:
		i.emit(events.NewOrderConfirmation(action))
	default:
		logger.Warn("ignoring confirm_order with unknown action", "action", args.Action)
	}
}

func (i *commandInterpreter) handleRemoveFromOrder(arguments string) {
	var args protocol.RemoveFromOrderArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		logger.Error("failed to parse remove_from_order arguments", "error", err)
		return
	}

	quantity := args.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	i.emit(events.NewOrderItemRemoved(args.ItemName, quantity))
}

func (i *commandInterpreter) match(spokenName string) menu.Match {
	if i.matcher == nil {
		return menu.Match{}
	}
	return i.matcher.Match(spokenName)
}
