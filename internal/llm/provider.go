// Package llm talks to hosted language models. Callers describe a prompt
// and an optional JSON schema; every backend returns schema-checked JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a single structured reply.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the backend's native structured output is used and Content is
	// validated against the schema before it is returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

// Request is one prompt. TotoTime only ever sends a single user turn.
type Request struct {
	System   string
	Messages []Message
	Schema   *Schema

	MaxTokens int
	// Temperature in [0, 1]. Zero leaves the backend default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt is shorthand for a one-message conversation.
func UserPrompt(text string) []Message {
	return []Message{{Role: RoleUser, Content: text}}
}

// Schema is a named JSON Schema. Name is kebab-case, e.g. "buddy-line";
// it doubles as the OpenAI schema name.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
