// Package buddy produces the short lines a learner's character says.
// Lines come from the character's static pools, or from a language model
// when one is configured.
package buddy

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/llm"
)

// MaxLineLength caps model-written lines, in characters.
const MaxLineLength = 120

const defaultTimeout = 8 * time.Second

var lineSchema = &llm.Schema{
	Name:        "buddy-line",
	Description: "One short, cheerful line spoken by a cartoon animal to a young child.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The line, at most 120 characters, no markdown.",
				"maxLength":   MaxLineLength,
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

// Request describes the moment a line is wanted for.
type Request struct {
	Character characters.Character
	Mood      characters.Mood
	// Situation is a short plain description, e.g. "finished the Half
	// Past lesson".
	Situation string
	Learner   string
}

// Line is what the buddy says.
type Line struct {
	Text      string
	FromModel bool
}

// Service hands out lines. It is safe for concurrent use.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *zap.Logger

	// shareName puts the learner's name in model prompts.
	shareName bool

	mu     sync.Mutex
	picker *characters.Picker
}

// Option configures a Service.
type Option func(*Service)

func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShareName lets model prompts include the learner's name. Off by
// default.
func WithShareName(share bool) Option {
	return func(s *Service) { s.shareName = share }
}

// WithPicker replaces the random source for static lines.
func WithPicker(p *characters.Picker) Option {
	return func(s *Service) { s.picker = p }
}

// New returns a Service. A nil provider means static lines only.
func New(provider llm.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		timeout:  defaultTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.picker == nil {
		s.picker = characters.NewPicker(nil)
	}
	s.logger = s.logger.Named("buddy")
	return s
}

// Setup builds a Service from configuration. Any problem with the model
// setup is logged and results in a static-only Service.
func Setup(ctx context.Context, enabled bool, timeout time.Duration, cfg llm.Config, logger *zap.Logger, extra ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := append([]Option{WithTimeout(timeout), WithLogger(logger)}, extra...)
	if !enabled {
		return New(nil, opts...)
	}

	cfg, found := cfg.Resolve()
	if !found {
		logger.Info("no llm provider configured, buddy uses static lines")
		return New(nil, opts...)
	}
	provider, err := llm.NewProvider(ctx, cfg, logger)
	if err != nil {
		logger.Warn("llm provider unavailable, buddy uses static lines", zap.Error(err))
		return New(nil, opts...)
	}
	logger.Info("buddy enabled", zap.String("provider", cfg.Provider), zap.String("model", provider.ModelID()))
	return New(provider, opts...)
}

// Enabled reports whether lines may come from a model.
func (s *Service) Enabled() bool { return s.provider != nil }

// Static returns a random line from the character's pool for the mood.
func (s *Service) Static(req Request) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.Line(req.Character, req.Mood)
}

// Line asks the model for a line and falls back to a static one on any
// failure. It never returns an empty line for a character with lines.
func (s *Service) Line(ctx context.Context, req Request) Line {
	if s.provider == nil {
		return Line{Text: s.Static(req)}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "buddy-"+string(req.Mood))

	text, err := s.generate(ctx, req)
	if err != nil {
		s.logger.Warn("falling back to static line",
			zap.String("character", string(req.Character.ID)),
			zap.String("mood", string(req.Mood)),
			zap.Error(err))
		return Line{Text: s.Static(req)}
	}
	return Line{Text: text, FromModel: true}
}

func (s *Service) generate(ctx context.Context, req Request) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(req.Character),
		Messages:    llm.UserPrompt(s.userPrompt(req)),
		Schema:      lineSchema,
		MaxTokens:   200,
		Temperature: 0.9,
	})
	if err != nil {
		return "", err
	}

	out, err := llm.Decode[struct {
		Message string `json:"message"`
	}](resp, lineSchema)
	if err != nil {
		return "", fmt.Errorf("decode buddy line: %w", err)
	}
	text := clean(out.Message)
	if text == "" {
		return "", fmt.Errorf("model returned an empty line")
	}
	return text, nil
}

// clean collapses whitespace so the line renders on one row.
func clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > MaxLineLength {
		s = string(r[:MaxLineLength])
	}
	return s
}

func systemPrompt(c characters.Character) string {
	return fmt.Sprintf(`You are %s %s, a friendly buddy in a clock-reading game for children aged 4 to 8.
Personality: %s
Speak in one short sentence of simple words, at most %d characters. Be warm and encouraging.
Never mention being an AI, never ask for personal information, no markdown.
Examples of how you talk:
- %s`,
		c.Name, c.Emoji, c.Personality, MaxLineLength,
		strings.Join(append(append([]string{}, c.Greetings...), c.Celebrations...), "\n- "))
}

func (s *Service) userPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mood: %s.\n", req.Mood)
	if s.shareName && req.Learner != "" {
		fmt.Fprintf(&b, "The child's name is %s.\n", req.Learner)
	}
	if req.Situation != "" {
		fmt.Fprintf(&b, "What just happened: %s.\n", req.Situation)
	}
	b.WriteString("Write the line.")
	return b.String()
}

// LineMsg delivers a fetched line to the screen that asked for it.
type LineMsg struct {
	Key  string
	Line Line
}

// Fetch returns a command that resolves a line in the background. Key
// lets the receiver ignore answers meant for a screen it has left. It
// returns nil when no model is configured; callers already show a
// static line.
func (s *Service) Fetch(key string, req Request) tea.Cmd {
	if s == nil || s.provider == nil {
		return nil
	}
	return func() tea.Msg {
		return LineMsg{Key: key, Line: s.Line(context.Background(), req)}
	}
}
