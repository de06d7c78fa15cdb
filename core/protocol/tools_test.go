package protocol

import "testing"

func TestOrderToolsReflectSchemas(t *testing.T) {
	tools := OrderTools()

	if len(tools) != 3 {
		t.Fatalf("expected three order tools, got %d", len(tools))
	}

	byName := map[string]ToolDefinition{}
	for _, tool := range tools {
		if tool.Type != "function" {
			t.Fatalf("expected function tool, got %q", tool.Type)
		}
		if tool.Parameters == nil {
			t.Fatalf("expected reflected parameters for %q", tool.Name)
		}
		byName[tool.Name] = tool
	}

	for _, name := range []string{FunctionAddToOrder, FunctionConfirmOrder, FunctionRemoveFromOrder} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("expected tool %q to be defined", name)
		}
	}

	confirm := byName[FunctionConfirmOrder]
	action, ok := confirm.Parameters.Properties.Get("action")
	if !ok {
		t.Fatalf("expected confirm_order schema to declare an action property")
	}
	if len(action.Enum) != 3 {
		t.Fatalf("expected three action values, got %v", action.Enum)
	}
}
