// Package runner coordinates the two-phase completion exchange and
// dispatches tool calls.
//
// Invariants:
//   - prompts are processed strictly sequentially; one state-machine pass
//     per prompt, one network call in flight at a time.
//   - every tool-role message carries the tool_call_id of the request it
//     answers plus the tool name.
//   - tool use is single-round: the second completion is requested without
//     the catalog, so results cannot trigger further calls.
//
// Flow per prompt:
//
//	user(text) -> assistant(tool_calls?) -> tool(results)... -> assistant(text)
package runner
