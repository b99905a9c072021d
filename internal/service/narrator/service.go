package narrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"gameuigo/internal/models"
)

const maxSuggestionLen = 30

// ChatModel is the slice of the eino chat-model surface the service uses.
// Keeping it narrow lets tests stub the provider without a network.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Service turns UI context into provider prompts and maps provider output
// back into typed responses. A nil text model means no provider is
// configured; every method then serves its canned fallback. Provider and
// parse failures are absorbed the same way, so callers always get a value.
type Service struct {
	textModel ChatModel
	jsonModel ChatModel
	log       zerolog.Logger
}

// NewService constructs a Service. Pass nil models to run without a
// provider.
func NewService(textModel, jsonModel ChatModel, log zerolog.Logger) *Service {
	return &Service{textModel: textModel, jsonModel: jsonModel, log: log}
}

// Available reports whether a provider client is configured.
func (s *Service) Available() bool { return s.textModel != nil }

// Suggestions produces up to n short interjection lines for the player to
// click.
func (s *Service) Suggestions(ctx context.Context, req *models.SuggestionRequest) []string {
	n := req.Count()
	if !s.Available() {
		return fallbackSuggestions(n)
	}
	out, err := s.generateSuggestions(ctx, req, n)
	if err != nil {
		s.log.Warn().Err(err).Msg("suggestion generation failed, serving canned pool")
		return fallbackSuggestions(n)
	}
	return out
}

func (s *Service) generateSuggestions(ctx context.Context, req *models.SuggestionRequest, n int) ([]string, error) {
	content, err := s.generate(ctx, s.jsonModel, suggestionSystemPrompt, suggestionUserPrompt(req, n),
		model.WithTemperature(0.7), model.WithMaxTokens(200))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Suggestions []any `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if payload.Suggestions == nil {
		return nil, errors.New("suggestions key missing or not a list")
	}
	items := payload.Suggestions
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, 0, len(items))
	for _, v := range items {
		out = append(out, truncate(coerceString(v), maxSuggestionLen))
	}
	return out, nil
}

// Reply produces one short NPC reply to the latest player message.
func (s *Service) Reply(ctx context.Context, req *models.ChatRequest) string {
	if !s.Available() {
		if req.PlayerMessage != "" {
			return fmt.Sprintf(fallbackReplyFormat, req.PlayerMessage)
		}
		return fallbackReply
	}
	content, err := s.generate(ctx, s.textModel, chatSystemPrompt, chatUserPrompt(req),
		model.WithTemperature(0.6), model.WithMaxTokens(80))
	if err != nil {
		s.log.Warn().Err(err).Msg("chat reply generation failed, serving canned reply")
		return fallbackReplyOnError
	}
	return strings.TrimSpace(content)
}

// VoiceEvent turns a voice transcript into one small world event.
func (s *Service) VoiceEvent(ctx context.Context, req *models.VoiceRequest) models.GeneratedEvent {
	if !s.Available() {
		return quietEvent
	}
	content, err := s.generate(ctx, s.jsonModel, voiceSystemPrompt, voiceUserPrompt(req),
		model.WithTemperature(0.7), model.WithMaxTokens(120))
	if err != nil {
		s.log.Warn().Err(err).Msg("voice event generation failed, serving canned event")
		return stilledEvent
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		s.log.Warn().Err(err).Msg("voice event output was not a JSON object, serving canned event")
		return stilledEvent
	}
	// Holes in the object default per field; a half-formed event is still
	// an event.
	return models.GeneratedEvent{
		T:     stringOr(payload["t"], defaultEventT),
		Title: stringOr(payload["title"], defaultEventTitle),
		Desc:  stringOr(payload["desc"], defaultEventDesc),
	}
}

func (s *Service) generate(ctx context.Context, m ChatModel, system, user string, opts ...model.Option) (string, error) {
	msg, err := m.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}, opts...)
	if err != nil {
		return "", err
	}
	if msg == nil {
		return "", errors.New("empty completion")
	}
	return msg.Content, nil
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func stringOr(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	if s := coerceString(v); s != "" {
		return s
	}
	return fallback
}

// truncate cuts s to at most n characters, counting runes so multi-byte
// text is never split.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
