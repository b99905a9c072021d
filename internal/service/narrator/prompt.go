package narrator

import (
	"fmt"
	"strings"

	"gameuigo/internal/models"
)

const (
	maxContextEvents  = 8
	suggestionTailLen = 8
	chatTailLen       = 10
)

const noWorldEvents = "(无世界事件)"

const suggestionSystemPrompt = "你是插话建议生成器。根据世界事件与最近对话，给出短小、有暗示性、可点击的台词建议。" +
	"要求：每条不超过16字，语义多样，有行动/情绪/信息差。只返回 JSON 对象，键为 suggestions。"

const chatSystemPrompt = "你是群聊中的 NPC 回复生成器。要求：\n" +
	"- 语气自然简短（<= 30 字），不剧透，不强设定。\n" +
	"- 优先参考左栏“世界事件/命运主线”，保持一致性。\n" +
	"- 若玩家插话偏离命运，也要温和接住并暗示纠偏。"

const voiceSystemPrompt = "你是事件微扰生成器。输入为玩家的语音转写（文本），输出为一个微小世界事件。" +
	"要求输出 JSON：{t,title,desc}。事件需细微但可感（如人群情绪、环境声响、视线变化）。"

// worldContext renders the first few world events as bullet lines, or a
// fixed marker when the caller supplied none.
func worldContext(events []models.WorldEvent) string {
	if len(events) == 0 {
		return noWorldEvents
	}
	if len(events) > maxContextEvents {
		events = events[:maxContextEvents]
	}
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, fmt.Sprintf("- %s · %s · %s",
			ev.Field("t", "?"), ev.Field("title", ""), ev.Field("desc", "")))
	}
	return strings.Join(lines, "\n")
}

// chatTail renders the last n chat turns, oldest first.
func chatTail(chat []models.ChatMessage, n int) string {
	if len(chat) > n {
		chat = chat[len(chat)-n:]
	}
	lines := make([]string, 0, len(chat))
	for _, m := range chat {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}

func suggestionUserPrompt(req *models.SuggestionRequest, n int) string {
	return fmt.Sprintf("世界事件:\n%s\n\n最近对话:\n%s\n\n请生成 %d 条中文插话建议。",
		worldContext(req.WorldEvents), chatTail(req.Chat, suggestionTailLen), n)
}

func chatUserPrompt(req *models.ChatRequest) string {
	return fmt.Sprintf("世界事件（命运主线摘要）：\n%s\n\n最近对话（含玩家）：\n%s\n\n玩家最新发言：%s\n请给出 NPC 的下一句简短中文回复。",
		worldContext(req.WorldEvents), chatTail(req.Chat, chatTailLen), req.PlayerMessage)
}

func voiceUserPrompt(req *models.VoiceRequest) string {
	return fmt.Sprintf("已知世界事件：\n%s\n\n玩家语音转写：%s\n请生成一个新的细微世界事件。",
		worldContext(req.WorldEvents), req.Transcript)
}
