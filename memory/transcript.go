package memory

import (
	"github.com/ghscout/ghscout/internal/provider"
)

// Transcript is the ordered message context sent to the model. The zero value
// is not usable; construct with NewTranscript so the system message invariant
// holds from the start.
type Transcript struct {
	system   provider.Message
	messages []provider.Message
}

// NewTranscript returns a transcript seeded with a single system message.
func NewTranscript(systemPrompt string) *Transcript {
	t := &Transcript{system: provider.NewSystemMessage(systemPrompt)}
	t.messages = []provider.Message{t.system}
	return t
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg provider.Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the transcript. Callers may hand the copy to a
// request body without racing later appends.
func (t *Transcript) Messages() []provider.Message {
	out := make([]provider.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports the number of messages, including the system message.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Reset drops everything after the system message.
func (t *Transcript) Reset() {
	t.messages = []provider.Message{t.system}
}
