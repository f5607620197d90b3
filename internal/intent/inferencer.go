// Package intent derives writing controls from a free-text description.
// Two interchangeable strategies exist: keyword rules and a remote
// probabilistic classifier. Both are total — inference never fails, the
// worst case is the neutral default.
package intent

import (
	"context"

	"mailcraft/internal/model"
)

// Inferencer 从描述推断写作配置；实现必须保证任何输入都返回可用的 Controls
type Inferencer interface {
	Infer(ctx context.Context, description string) model.Controls
}

// neutralControls 推断失败或无法判断时的保底配置
// 低置信度会让 prompt 侧禁止模型假设权限、期限等敏感细节
func neutralControls() model.Controls {
	return model.Controls{
		Sender:     "individual",
		Recipient:  "Recipient",
		Intent:     "general",
		Tone:       "professional",
		Length:     "medium",
		Confidence: "low",
	}
}
