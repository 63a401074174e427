// Package genai turns free-text prompts into fixed-shape JSON values by
// delegating to an OpenAI-compatible chat-completions endpoint, with a
// deterministic offline fallback for the workflow and agent generators.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// ErrFailed is the generic failure every generation error wraps. Callers get
// one taxonomy: provider/network error, missing credential, or malformed
// JSON all surface the same way, and none are retried.
var ErrFailed = errors.New("failed to generate content")

// Mode reports whether a result came from the live provider or from the
// canned simulated fallback, so callers and tests can tell the two apart.
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSimulated Mode = "simulated"
)

// WorkflowStep is one step of a generated automation workflow. The prompt
// asks for exactly four, numbered 1-4; the shape is enforced by the
// provider's schema mode, the count only by instruction.
type WorkflowStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Tool        string `json:"tool"`
	Description string `json:"description"`
}

// AgentConfig is a generated AI-agent configuration.
type AgentConfig struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Instructions []string `json:"instructions"`
	Capabilities []string `json:"capabilities"`
}

// PostDraft is the transient shape returned by blog draft generation,
// merged into a BlogPost under construction by the admin editor.
type PostDraft struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Config configures the client.
type Config struct {
	BaseURL string
	APIKey  string // empty enables simulated mode for workflow/agent
	Model   string
	// Delay is the artificial latency applied in simulated mode so the
	// perceived behavior matches a real provider round trip.
	Delay time.Duration
	// TimeoutMS bounds each provider call; 0 means no client timeout,
	// matching the system this replaces.
	TimeoutMS int
}

// Client is the generative-content client. One fixed model, single-turn
// requests, no caching, no retry, no rate limiting.
type Client struct {
	api   *openai.Client
	model string
	delay time.Duration
	live  bool
}

// New creates a Client. With an empty APIKey the client never reaches the
// network: the workflow and agent generators return canned payloads after
// the configured delay, and blog drafting fails.
func New(cfg Config) *Client {
	c := &Client{
		model: cfg.Model,
		delay: cfg.Delay,
		live:  strings.TrimSpace(cfg.APIKey) != "",
	}
	if c.live {
		apiCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		httpClient := &http.Client{}
		if cfg.TimeoutMS > 0 {
			httpClient.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
		}
		apiCfg.HTTPClient = httpClient
		c.api = openai.NewClientWithConfig(apiCfg)
	}
	return c
}

// Live reports whether a provider credential is configured.
func (c *Client) Live() bool {
	return c.live
}

// GenerateWorkflow produces a four-step automation workflow for the given
// task description. Without a credential it returns the canned workflow
// with ModeSimulated after the artificial delay.
func (c *Client) GenerateWorkflow(ctx context.Context, task string) ([]WorkflowStep, Mode, error) {
	if !c.live {
		if err := c.simulate(ctx); err != nil {
			return nil, ModeSimulated, err
		}
		return FallbackWorkflow(), ModeSimulated, nil
	}
	var out struct {
		Steps []WorkflowStep `json:"steps"`
	}
	if err := c.generateStructured(ctx, workflowPrompt(task), "workflow", workflowSchema(), &out); err != nil {
		return nil, ModeLive, err
	}
	return out.Steps, ModeLive, nil
}

// GenerateAgentConfig produces an agent configuration for the given idea.
// Without a credential it returns the canned config with ModeSimulated
// after the artificial delay.
func (c *Client) GenerateAgentConfig(ctx context.Context, idea string) (AgentConfig, Mode, error) {
	if !c.live {
		if err := c.simulate(ctx); err != nil {
			return AgentConfig{}, ModeSimulated, err
		}
		return FallbackAgentConfig(), ModeSimulated, nil
	}
	var out AgentConfig
	if err := c.generateStructured(ctx, agentPrompt(idea), "agent_config", agentSchema(), &out); err != nil {
		return AgentConfig{}, ModeLive, err
	}
	return out, ModeLive, nil
}

// GeneratePostDraft produces a blog draft for the given topic. There is no
// fallback here: a missing credential is an error, and the provider is asked
// for plain JSON text that gets fence-stripped before parsing.
func (c *Client) GeneratePostDraft(ctx context.Context, topic string) (PostDraft, error) {
	if !c.live {
		return PostDraft{}, fmt.Errorf("%w: no API key configured", ErrFailed)
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: postDraftPrompt(topic)},
		},
	})
	if err != nil {
		return PostDraft{}, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	if len(resp.Choices) == 0 {
		return PostDraft{}, fmt.Errorf("%w: empty response", ErrFailed)
	}
	var draft PostDraft
	cleaned := StripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return PostDraft{}, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return draft, nil
}

// generateStructured submits a single-turn request with a schema-constrained
// response format and unmarshals the result into out.
func (c *Client) generateStructured(ctx context.Context, prompt, name string, schema jsonschema.Definition, out any) error {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("%w: empty response", ErrFailed)
	}
	content := StripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return nil
}

// simulate waits out the artificial delay, honoring cancellation.
func (c *Client) simulate(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delay):
		return nil
	}
}

// StripFences removes a surrounding markdown code fence from model output.
// Providers in plain-text mode like to wrap JSON in ```json ... ``` even
// when told not to.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func workflowSchema() jsonschema.Definition {
	step := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"step":        {Type: jsonschema.Integer, Description: "1-based position in the sequence"},
			"title":       {Type: jsonschema.String},
			"tool":        {Type: jsonschema.String},
			"description": {Type: jsonschema.String},
		},
		Required:             []string{"step", "title", "tool", "description"},
		AdditionalProperties: false,
	}
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"steps": {Type: jsonschema.Array, Items: &step},
		},
		Required:             []string{"steps"},
		AdditionalProperties: false,
	}
}

func agentSchema() jsonschema.Definition {
	str := jsonschema.Definition{Type: jsonschema.String}
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"name":         {Type: jsonschema.String},
			"role":         {Type: jsonschema.String},
			"instructions": {Type: jsonschema.Array, Items: &str},
			"capabilities": {Type: jsonschema.Array, Items: &str},
		},
		Required:             []string{"name", "role", "instructions", "capabilities"},
		AdditionalProperties: false,
	}
}
