package protocol

import (
	"github.com/invopop/jsonschema"
)

// Function names the assistant uses to carry order modifications.
const (
	FunctionAddToOrder      = "add_to_order"
	FunctionConfirmOrder    = "confirm_order"
	FunctionRemoveFromOrder = "remove_from_order"
)

// SpokenItem is one item as extracted by the assistant, before any catalog
// matching.
type SpokenItem struct {
	Name      string   `json:"name" jsonschema:"title=Name,description=The spoken name of the menu item"`
	Quantity  int      `json:"quantity" jsonschema:"title=Quantity,description=How many of the item to add"`
	Modifiers []string `json:"modifiers,omitempty" jsonschema:"title=Modifiers,description=Spoken modifiers such as 'no onions'"`
}

// AddToOrderArgs are the arguments of an add_to_order call.
type AddToOrderArgs struct {
	Items []SpokenItem `json:"items" jsonschema:"title=Items,description=The items to add to the order"`
}

// ConfirmOrderArgs are the arguments of a confirm_order call.
type ConfirmOrderArgs struct {
	Action string `json:"action" jsonschema:"title=Action,description=What to do with the current order,enum=checkout,enum=review,enum=cancel"`
}

// RemoveFromOrderArgs are the arguments of a remove_from_order call.
type RemoveFromOrderArgs struct {
	ItemName string `json:"itemName" jsonschema:"title=Item name,description=The spoken name of the item to remove"`
	Quantity int    `json:"quantity" jsonschema:"title=Quantity,description=How many of the item to remove"`
}

// ToolDefinition is one function tool as carried in the session config.
type ToolDefinition struct {
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// OrderTools returns the function tool definitions of the ordering domain,
// with parameter schemas reflected from the argument structs.
func OrderTools() []ToolDefinition {
	// jsonschema references confuse the upstream schema validator
	reflector := jsonschema.Reflector{DoNotReference: true}

	return []ToolDefinition{
		{
			Type:        "function",
			Name:        FunctionAddToOrder,
			Description: "Add one or more spoken menu items to the current order",
			Parameters:  reflector.Reflect(&AddToOrderArgs{}),
		},
		{
			Type:        "function",
			Name:        FunctionConfirmOrder,
			Description: "Confirm, review or cancel the current order",
			Parameters:  reflector.Reflect(&ConfirmOrderArgs{}),
		},
		{
			Type:        "function",
			Name:        FunctionRemoveFromOrder,
			Description: "Remove a spoken menu item from the current order",
			Parameters:  reflector.Reflect(&RemoveFromOrderArgs{}),
		},
	}
}
