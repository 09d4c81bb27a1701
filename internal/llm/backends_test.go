package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineSchema() *Schema {
	return &Schema{
		Name: "buddy-line",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{"type": "string", "maxLength": 120},
			},
			"required":             []any{"message"},
			"additionalProperties": false,
		},
	}
}

func lineRequest() Request {
	return Request{
		System:    "You are Bella the Bunny.",
		Messages:  UserPrompt("Say hello."),
		Schema:    lineSchema(),
		MaxTokens: 200,
	}
}

func serve(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 12},
	}
}

func newAnthropic(t *testing.T, srv *httptest.Server) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func TestAnthropicGenerate(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"message":"Hop hop, hello!"}`, "end_turn"))
	p := newAnthropic(t, srv)

	resp, err := p.Generate(context.Background(), lineRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Hop hop, hello!"}`, string(resp.Content))
	assert.Equal(t, 62, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
}

func TestAnthropicSchemaViolation(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"text":"wrong key"}`, "end_turn"))
	_, err := newAnthropic(t, srv).Generate(context.Background(), lineRequest())

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestAnthropicTruncated(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"message":"Hop`, "max_tokens"))
	_, err := newAnthropic(t, srv).Generate(context.Background(), lineRequest())

	var trunc *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &trunc)
}

func TestAnthropicHTTPErrors(t *testing.T) {
	errBody := map[string]any{"type": "error", "error": map[string]any{"type": "x", "message": "nope"}}

	_, err := newAnthropic(t, serve(t, http.StatusTooManyRequests, errBody)).Generate(context.Background(), lineRequest())
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = newAnthropic(t, serve(t, http.StatusInternalServerError, errBody)).Generate(context.Background(), lineRequest())
	var down *ErrProviderUnavailable
	assert.ErrorAs(t, err, &down)
}

func openAICompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 10, "total_tokens": 50},
	}
}

func newOpenAI(t *testing.T, srv *httptest.Server) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func TestOpenAIGenerate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openAICompletion(`{"message":"Splash! Great job!"}`, "stop"))
	}))
	t.Cleanup(srv.Close)

	resp, err := newOpenAI(t, srv).Generate(context.Background(), lineRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Splash! Great job!"}`, string(resp.Content))
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, "end", resp.StopReason)

	msgs, _ := got["messages"].([]any)
	assert.Len(t, msgs, 2, "system prompt plus one user turn")
	format, _ := got["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAIErrors(t *testing.T) {
	errBody := map[string]any{"error": map[string]any{"type": "x", "message": "nope"}}

	_, err := newOpenAI(t, serve(t, http.StatusTooManyRequests, errBody)).Generate(context.Background(), lineRequest())
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = newOpenAI(t, serve(t, http.StatusBadGateway, errBody)).Generate(context.Background(), lineRequest())
	var down *ErrProviderUnavailable
	assert.ErrorAs(t, err, &down)

	_, err = newOpenAI(t, serve(t, http.StatusOK, openAICompletion(`{"message":`, "length"))).Generate(context.Background(), lineRequest())
	var trunc *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &trunc)

	_, err = newOpenAI(t, serve(t, http.StatusOK, map[string]any{"choices": []any{}})).Generate(context.Background(), lineRequest())
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID(), "model ids pass through")

	srv := serve(t, http.StatusOK, openAICompletion(`{"message":"Hi from the router"}`, "stop"))
	p, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)
	resp, err := p.Generate(context.Background(), lineRequest())
	require.NoError(t, err)
	assert.Contains(t, string(resp.Content), "router")
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "gpt-4.1", resolveModel("gpt-4.1", openaiModels))
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string", "description": "one short line"},
			"mood":    map[string]any{"type": "string", "enum": []string{"happy", "proud"}},
			"stars":   map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
		"required": []any{"message"},
	})

	assert.Equal(t, "OBJECT", string(s.Type))
	assert.Len(t, s.Properties, 3)
	assert.Equal(t, "one short line", s.Properties["message"].Description)
	assert.Equal(t, []string{"happy", "proud"}, s.Properties["mood"].Enum)
	assert.Equal(t, "INTEGER", string(s.Properties["stars"].Items.Type))
	assert.Equal(t, []string{"message"}, s.Required)
}
