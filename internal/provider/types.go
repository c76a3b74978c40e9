package provider

// Chat message roles understood by the completions endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry in the transcript sent with every completion request.
// Content is a pointer because the wire distinguishes empty text from null
// (assistant replies that only carry tool calls have null content).
type Message struct {
	Role       string     `json:"role"`
	Content    *string    `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"` // set only on tool-role messages
	Name       string     `json:"name,omitempty"`         // set only on tool-role messages
}

// NewSystemMessage returns a system-role message with the given text.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: &text}
}

// NewUserMessage returns a user-role message with the given text.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: &text}
}

// NewToolMessage returns a tool-role message answering the tool call with the
// given id. The id and tool name are both required for model-side correlation.
func NewToolMessage(toolCallID, name, content string) Message {
	return Message{Role: RoleTool, Content: &content, ToolCallID: toolCallID, Name: name}
}

// Text returns the message content, or "" when content is null.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// ToolCall is a model-issued request to invoke a named function.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // "function"
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the function name and its arguments as a JSON-encoded
// string, exactly as the wire delivers them.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool is one entry of the "tools" catalog offered with a completion request.
type Tool struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes a callable function: name, human description,
// and a JSON-schema parameters object.
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// ChatRequest is the chat-completions request body.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Tools       []Tool    `json:"tools,omitempty"`
	ToolChoice  string    `json:"tool_choice,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	TopP        *float64  `json:"top_p,omitempty"`
}

// ChatResponse is the chat-completions response body.
type ChatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
