package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghscout/ghscout/internal/provider"
	"github.com/ghscout/ghscout/internal/telemetry"
	"github.com/ghscout/ghscout/memory"
	"github.com/ghscout/ghscout/pkg/log"
	"github.com/ghscout/ghscout/tools"
)

// DefaultSystemPrompt seeds the transcript when neither settings nor request
// properties override it.
const DefaultSystemPrompt = "You are a helpful assistant. Use the available GitHub tools whenever a question requires user, repository, commit, or pull request data, then answer from the tool results."

// Options configures a Runner for one run.
type Options struct {
	// GitHubToken is the trusted credential substituted into every tool
	// call. Required; Run fails before processing any prompt without it.
	GitHubToken string
	// SystemPrompt overrides DefaultSystemPrompt when non-empty.
	SystemPrompt string
	// FreshContextPerPrompt resets the transcript to the system message
	// before each prompt instead of accumulating across the batch.
	FreshContextPerPrompt bool
	// TranscriptPath, when non-empty, receives the final transcript as JSON.
	TranscriptPath string
	Logger         *log.Logger
}

// Runner drives batches of prompts through the completion/tool loop.
type Runner struct {
	client *provider.Client
	tools  []tools.ToolDefinition
	byName map[string]*tools.ToolDefinition
	opts   Options
	log    *log.Logger
}

// New builds a Runner over a provider client and a tool catalog.
func New(client *provider.Client, toolDefs []tools.ToolDefinition, opts Options) *Runner {
	byName := make(map[string]*tools.ToolDefinition, len(toolDefs))
	for i := range toolDefs {
		byName[toolDefs[i].Name] = &toolDefs[i]
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Config{})
	}
	return &Runner{
		client: client,
		tools:  toolDefs,
		byName: byName,
		opts:   opts,
		log:    logger,
	}
}

// Request is one batch of prompts to answer with a given model.
type Request struct {
	Model      string
	Prompts    []string
	Properties Properties
}

// Properties are per-run overrides forwarded verbatim to the model.
type Properties struct {
	SystemPrompt string
	Temperature  *float64
	MaxTokens    *int
	TopP         *float64
}

// Run processes every prompt sequentially and returns one completion record
// per prompt in input order. Per-prompt failures are captured in the records;
// only failures before the loop (missing credential) abort the whole run.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if r.opts.GitHubToken == "" {
		return nil, fmt.Errorf("runner: missing GitHub token")
	}
	if req.Model == "" {
		return nil, fmt.Errorf("runner: missing model name")
	}

	sys := r.opts.SystemPrompt
	if req.Properties.SystemPrompt != "" {
		sys = req.Properties.SystemPrompt
	}
	if sys == "" {
		sys = DefaultSystemPrompt
	}
	transcript := memory.NewTranscript(sys)

	completions := make([]Completion, 0, len(req.Prompts))
	modelType := ""
	for i, prompt := range req.Prompts {
		if r.opts.FreshContextPerPrompt && i > 0 {
			transcript.Reset()
		}
		resp, err := r.runPrompt(ctx, transcript, req, prompt)
		if err != nil {
			r.log.Warn("prompt failed", "index", i, "err", err)
			completions = append(completions, failedCompletion(err))
			telemetry.Emit("prompt_done", map[string]any{"index": i, "error": err.Error()})
			continue
		}
		completions = append(completions, successCompletion(resp))
		if modelType == "" && resp.Model != "" {
			modelType = resp.Model
		}
		telemetry.Emit("prompt_done", map[string]any{"index": i, "error": nil})
	}
	if modelType == "" {
		modelType = req.Model
	}

	if r.opts.TranscriptPath != "" {
		if err := memory.SaveTranscript(r.opts.TranscriptPath, transcript.Messages()); err != nil {
			r.log.Warn("failed to save transcript", "path", r.opts.TranscriptPath, "err", err)
		}
	}
	return &Result{Completions: completions, ModelType: modelType}, nil
}

// runPrompt executes one pass of the state machine: first completion with
// the catalog offered, tool execution if requested, then a second completion
// over the extended transcript without the catalog.
func (r *Runner) runPrompt(ctx context.Context, tr *memory.Transcript, req Request, prompt string) (*provider.ChatResponse, error) {
	turnID := uuid.NewString()
	ctx = telemetry.WithTurnID(ctx, turnID)
	telemetry.EmitPromptFeatures(ctx, prompt)

	tr.Append(provider.NewUserMessage(prompt))

	first, err := r.complete(ctx, req, tr.Messages(), r.wireTools())
	if err != nil {
		return nil, err
	}

	// The assistant reply is stored even when it only carries tool calls;
	// content may legitimately be null in that case.
	msg := first.Choices[0].Message
	tr.Append(msg)

	if len(msg.ToolCalls) == 0 {
		return first, nil
	}

	for _, call := range msg.ToolCalls {
		toolMsg, err := r.execTool(ctx, call)
		if err != nil {
			return nil, err
		}
		tr.Append(toolMsg)
	}

	second, err := r.complete(ctx, req, tr.Messages(), nil)
	if err != nil {
		return nil, err
	}
	tr.Append(second.Choices[0].Message)
	return second, nil
}

// complete requests one completion over msgs. A non-empty toolset is offered
// with tool_choice "auto"; a nil toolset withholds the catalog entirely.
func (r *Runner) complete(ctx context.Context, req Request, msgs []provider.Message, toolset []provider.Tool) (*provider.ChatResponse, error) {
	creq := provider.ChatRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Properties.Temperature,
		MaxTokens:   req.Properties.MaxTokens,
		TopP:        req.Properties.TopP,
	}
	if len(toolset) > 0 {
		creq.Tools = toolset
		creq.ToolChoice = "auto"
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)
	telemetry.Emit("completion_request", map[string]any{
		"turn_id":  turnID,
		"model":    req.Model,
		"messages": len(msgs),
		"tools":    len(toolset),
	})

	r.log.Debug("requesting completion", "messages", len(msgs), "tools", len(toolset))
	return r.client.CreateChatCompletion(ctx, creq)
}

// wireTools converts the catalog into the chat-completions tools payload.
func (r *Runner) wireTools() []provider.Tool {
	out := make([]provider.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, provider.Tool{
			Type: "function",
			Function: provider.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	return out
}
