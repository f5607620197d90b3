// Package llm contains the model gateway abstraction and its backends.
// A gateway sends messages to a text-generation provider and returns the raw
// reply; it never interprets the content.
package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Gateway 文本生成后端的统一契约；实现必须可并发使用
type Gateway interface {
	// Generate 发送消息并返回原始回复文本。
	// 空回复返回 LLM_EMPTY_RESPONSE，传输失败返回 LLM_UNAVAILABLE。
	Generate(ctx context.Context, messages []Message) (string, error)

	// Provider 返回后端标识（用于日志和指标）
	Provider() string
}
