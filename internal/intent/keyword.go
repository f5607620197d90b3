package intent

import (
	"context"
	"strings"

	"mailcraft/internal/model"
)

// keywordRule 一组关键词对应一种意图；priority 即切片顺序，先命中先赢
type keywordRule struct {
	keywords  []string
	sender    string
	recipient string
	intent    string
}

var keywordRules = []keywordRule{
	{
		keywords:  []string{"fee", "exam", "tuition", "academic", "semester", "professor", "student"},
		sender:    "student",
		recipient: "Academic Office",
		intent:    "fee_reminder",
	},
	{
		keywords:  []string{"leave", "vacation", "sick", "absence", "manager", "day off"},
		sender:    "employee",
		recipient: "Manager",
		intent:    "leave_request",
	},
	{
		keywords:  []string{"payment", "invoice", "bill", "refund", "overdue"},
		sender:    "business",
		recipient: "Client",
		intent:    "payment_notice",
	},
}

// KeywordInferencer 基于固定关键词集的规则推断
type KeywordInferencer struct{}

func NewKeywordInferencer() *KeywordInferencer {
	return &KeywordInferencer{}
}

func (k *KeywordInferencer) Infer(_ context.Context, description string) model.Controls {
	lower := strings.ToLower(description)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				c := neutralControls()
				c.Sender = rule.sender
				c.Recipient = rule.recipient
				c.Intent = rule.intent
				c.Confidence = "high"
				return c
			}
		}
	}

	return neutralControls()
}
