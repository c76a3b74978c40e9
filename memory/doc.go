// Package memory owns the conversation transcript.
//
// Model:
//   - Transcript is the ordered message sequence sent with every completion
//     request; it always begins with exactly one system message.
//   - Growth is append-only across a batch by default; Reset drops everything
//     after the system message for runs configured with fresh context.
//   - Save/Load persist a transcript as JSON for post-run inspection.
package memory
