package runner

import "github.com/ghscout/ghscout/internal/provider"

// Completion is the output record for one prompt. Content is null and
// TokenUsage absent when Error is set.
type Completion struct {
	Content    *string `json:"content"`
	Error      string  `json:"error,omitempty"`
	TokenUsage *int    `json:"token_usage,omitempty"`
}

// Result is the whole batch's outcome. ModelType is the model name echoed by
// the first successful completion, falling back to the requested name.
type Result struct {
	Completions []Completion `json:"completions"`
	ModelType   string       `json:"model_type"`
}

func successCompletion(resp *provider.ChatResponse) Completion {
	c := Completion{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		n := resp.Usage.TotalTokens
		c.TokenUsage = &n
	}
	return c
}

func failedCompletion(err error) Completion {
	return Completion{Error: err.Error()}
}
