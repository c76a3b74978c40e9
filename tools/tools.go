package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one callable operation offered to the model.
// InputSchema is the chat-completions "parameters" object: type, properties
// with per-parameter type and description, and the required list.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
	Function    func(ctx context.Context, input json.RawMessage) (string, error)
}

// GenerateSchema derives the parameters object for T from its jsonschema tags.
// Fields without omitempty in their json tag are listed as required.
func GenerateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("tools: marshal schema for %T: %v", v, err))
	}
	var params map[string]any
	if err := json.Unmarshal(b, &params); err != nil {
		panic(fmt.Sprintf("tools: rebuild schema for %T: %v", v, err))
	}
	// The wire wants a bare parameters object, not a standalone document.
	delete(params, "$schema")
	delete(params, "$id")
	return params
}

// ParameterType returns the declared JSON type of a schema property
// ("string", "integer", ...), or "" when the schema does not state one.
func ParameterType(schema map[string]any, name string) string {
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return ""
	}
	prop, ok := props[name].(map[string]any)
	if !ok {
		return ""
	}
	t, _ := prop["type"].(string)
	return t
}

// RequiredParameters returns the schema's required-parameter names.
func RequiredParameters(schema map[string]any) []string {
	switch raw := schema["required"].(type) {
	case []string:
		return raw
	case []any:
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
