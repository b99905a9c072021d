package narrator

import "gameuigo/internal/models"

// Canned responses keep the UI usable when the provider is unavailable or
// misbehaves.

var fallbackPool = []string{
	"等等，先别说话，听——你听见了吗？",
	"向东转移队伍，躲开风暴眼。",
	"把消息压下去，免得引起恐慌。",
	"也许我们低估了天空的影子…",
	"别抬头，风从北边变冷了。",
	"嘘，嗡鸣在墙后回响。",
}

const (
	fallbackReply        = "我听见了，但风暴不会等人。"
	fallbackReplyFormat  = "明白：%s。但命运仍在推进。"
	fallbackReplyOnError = "先稳住阵脚，按既定路线走。"
)

// Per-field defaults for a provider event that came back with holes in it.
const (
	defaultEventT     = "此刻"
	defaultEventTitle = "微弱回声"
	defaultEventDesc  = "空气里浮起一阵细响，又迅速归于平静。"
)

// quietEvent is served when no provider is configured.
var quietEvent = models.GeneratedEvent{
	T:     "此刻",
	Title: "低语如潮",
	Desc:  "短暂的嗡鸣压过了争执，众人沉默片刻。",
}

// stilledEvent is served when the provider call or its JSON output fails
// outright. Distinct from the per-field defaults above.
var stilledEvent = models.GeneratedEvent{
	T:     "此刻",
	Title: "风停一瞬",
	Desc:  "像是被谁按下了暂停键，所有人都稍稍屏住了气。",
}

// fallbackSuggestions returns the first n canned phrases in fixed order,
// never repeating entries.
func fallbackSuggestions(n int) []string {
	if n < 1 {
		n = 1
	}
	if n > len(fallbackPool) {
		n = len(fallbackPool)
	}
	out := make([]string, n)
	copy(out, fallbackPool[:n])
	return out
}
