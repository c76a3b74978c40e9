package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ghscout/ghscout/internal/provider"
	"github.com/ghscout/ghscout/internal/telemetry"
	"github.com/ghscout/ghscout/tools"
)

// Tool resolution and argument failures are surfaced to the model as failed
// tool results so the second completion can still answer; only the tool's
// own execution error (e.g. a GitHub failure) aborts the prompt.
var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// execTool resolves and runs one tool call, returning the tool-role message
// to append. The returned message always echoes the call's id and tool name.
func (r *Runner) execTool(ctx context.Context, call provider.ToolCall) (provider.Message, error) {
	name := call.Function.Name
	raw := []byte(call.Function.Arguments)
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	emit := func(durationMs int64, outputSize int, errStr any) {
		telemetry.Emit("tool_exec", map[string]any{
			"turn_id":     turnID,
			"tool_name":   name,
			"duration_ms": durationMs,
			"input_size":  len(raw),
			"output_size": outputSize,
			"error":       errStr,
		})
	}

	start := time.Now()

	def, ok := r.byName[name]
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownTool, name)
		emit(time.Since(start).Milliseconds(), 0, "unknown tool")
		r.log.Warn("model requested unknown tool", "name", name)
		return provider.NewToolMessage(call.ID, name, err.Error()), nil
	}

	if !gjson.ValidBytes(raw) {
		err := fmt.Errorf("%w for %s: arguments are not valid JSON", ErrInvalidArguments, name)
		emit(time.Since(start).Milliseconds(), 0, "invalid arguments")
		return provider.NewToolMessage(call.ID, name, err.Error()), nil
	}

	// Whatever token the model supplied is overridden with the run's
	// credential before the arguments are looked at. Override, not merge.
	raw, serr := sjson.SetBytes(raw, "token", r.opts.GitHubToken)
	if serr != nil {
		err := fmt.Errorf("%w for %s: arguments are not a JSON object", ErrInvalidArguments, name)
		emit(time.Since(start).Milliseconds(), 0, "invalid arguments")
		return provider.NewToolMessage(call.ID, name, err.Error()), nil
	}

	if err := validateArgs(def, raw); err != nil {
		emit(time.Since(start).Milliseconds(), 0, "invalid arguments")
		return provider.NewToolMessage(call.ID, name, err.Error()), nil
	}

	out, err := def.Function(ctx, raw)
	if err != nil {
		// Generic error string in telemetry; the detailed message travels
		// up as the prompt's failure.
		emit(time.Since(start).Milliseconds(), 0, "tool error")
		return provider.Message{}, err
	}
	emit(time.Since(start).Milliseconds(), len(out), nil)
	return provider.NewToolMessage(call.ID, name, out), nil
}

// validateArgs checks the raw arguments against the descriptor's schema
// before dispatch, so a malformed model reply fails with a typed error
// instead of a parse fault inside the tool. Required parameters must be
// present, non-null, and carry the schema's declared type.
func validateArgs(def *tools.ToolDefinition, raw []byte) error {
	for _, name := range tools.RequiredParameters(def.InputSchema) {
		v := gjson.GetBytes(raw, name)
		if !v.Exists() || v.Type == gjson.Null {
			return fmt.Errorf("%w for %s: missing required parameter %q", ErrInvalidArguments, def.Name, name)
		}
		if want := tools.ParameterType(def.InputSchema, name); want != "" && !matchesSchemaType(v, want) {
			return fmt.Errorf("%w for %s: parameter %q must be of type %s", ErrInvalidArguments, def.Name, name, want)
		}
	}
	return nil
}

// matchesSchemaType reports whether a decoded argument value satisfies a
// JSON-schema primitive type name. Unrecognized type names pass.
func matchesSchemaType(v gjson.Result, want string) bool {
	switch want {
	case "string":
		return v.Type == gjson.String
	case "integer":
		return v.Type == gjson.Number && v.Num == math.Trunc(v.Num)
	case "number":
		return v.Type == gjson.Number
	case "boolean":
		return v.Type == gjson.True || v.Type == gjson.False
	case "object":
		return v.IsObject()
	case "array":
		return v.IsArray()
	default:
		return true
	}
}
