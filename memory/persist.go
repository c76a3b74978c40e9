package memory

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ghscout/ghscout/internal/provider"
)

// LoadTranscript reads a persisted transcript. A missing file is not an
// error; it returns a nil slice.
func LoadTranscript(path string) ([]provider.Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var msgs []provider.Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SaveTranscript writes the messages as indented JSON.
func SaveTranscript(path string, msgs []provider.Message) error {
	b, err := json.MarshalIndent(msgs, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
