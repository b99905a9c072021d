package models

import "fmt"

// Role identifies the speaker of a chat turn. Game UIs send npc and player
// in addition to the usual completion-API roles.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleNPC       Role = "npc"
	RolePlayer    Role = "player"
)

// ChatMessage is a single turn of the on-screen conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// WorldEvent is an open-shaped note about the game world supplied by the
// caller. Only t, title and desc are rendered into prompts; extra keys pass
// through untouched.
type WorldEvent map[string]any

// Field returns the named entry rendered as a string, or fallback when the
// entry is missing.
func (e WorldEvent) Field(key, fallback string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

const (
	DefaultSuggestionCount = 4
	MaxSuggestionCount     = 8
)

// SuggestionRequest asks for n short interjection suggestions.
type SuggestionRequest struct {
	Chat        []ChatMessage `json:"chat"`
	WorldEvents []WorldEvent  `json:"world_events"`
	N           *int          `json:"n"`
}

// Count reports the effective suggestion count: the default when n is
// absent, otherwise n clamped to [1,8].
func (r *SuggestionRequest) Count() int {
	if r.N == nil {
		return DefaultSuggestionCount
	}
	n := *r.N
	if n < 1 {
		return 1
	}
	if n > MaxSuggestionCount {
		return MaxSuggestionCount
	}
	return n
}

type SuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ChatRequest struct {
	Chat          []ChatMessage `json:"chat"`
	WorldEvents   []WorldEvent  `json:"world_events"`
	PlayerMessage string        `json:"player_message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type VoiceRequest struct {
	Transcript  string        `json:"transcript" binding:"required"`
	Chat        []ChatMessage `json:"chat"`
	WorldEvents []WorldEvent  `json:"world_events"`
}

// GeneratedEvent is the closed {t,title,desc} event shape returned to the UI.
type GeneratedEvent struct {
	T     string `json:"t"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type VoiceResponse struct {
	WorldEvent GeneratedEvent `json:"world_event"`
}
