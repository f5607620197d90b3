package intent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordInferencer(t *testing.T) {
	inf := NewKeywordInferencer()

	tests := []struct {
		name           string
		desc           string
		wantSender     string
		wantRecipient  string
		wantIntent     string
		wantConfidence string
	}{
		{
			name:           "exam fee reminder",
			desc:           "Please remind me to email the academic office about my exam fee due next week",
			wantSender:     "student",
			wantRecipient:  "Academic Office",
			wantIntent:     "fee_reminder",
			wantConfidence: "high",
		},
		{
			name:           "leave request",
			desc:           "Ask my manager for two days of sick leave starting Monday",
			wantSender:     "employee",
			wantRecipient:  "Manager",
			wantIntent:     "leave_request",
			wantConfidence: "high",
		},
		{
			name:           "overdue invoice",
			desc:           "Follow up with the customer about their overdue invoice from March",
			wantSender:     "business",
			wantRecipient:  "Client",
			wantIntent:     "payment_notice",
			wantConfidence: "high",
		},
		{
			name:           "uppercase keywords still match",
			desc:           "REMIND THE ACADEMIC OFFICE ABOUT MY EXAM FEE",
			wantSender:     "student",
			wantRecipient:  "Academic Office",
			wantIntent:     "fee_reminder",
			wantConfidence: "high",
		},
		{
			name:           "no keyword match falls back to neutral",
			desc:           "Write something nice to my neighbour about the garden party",
			wantSender:     "individual",
			wantRecipient:  "Recipient",
			wantIntent:     "general",
			wantConfidence: "low",
		},
		{
			name: "student keywords outrank payment keywords",
			// 同时命中两组关键词时按固定优先级取第一组
			desc:           "My exam fee invoice has not been paid yet",
			wantSender:     "student",
			wantRecipient:  "Academic Office",
			wantIntent:     "fee_reminder",
			wantConfidence: "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := inf.Infer(context.Background(), tt.desc)
			require.Equal(t, tt.wantSender, c.Sender)
			require.Equal(t, tt.wantRecipient, c.Recipient)
			require.Equal(t, tt.wantIntent, c.Intent)
			require.Equal(t, tt.wantConfidence, c.Confidence)
			require.NotEmpty(t, c.Tone)
			require.NotEmpty(t, c.Length)
		})
	}
}

// 推断必须对任何输入都返回可用配置
func TestKeywordInferencer_Total(t *testing.T) {
	inf := NewKeywordInferencer()

	for _, desc := range []string{
		"",
		"   ",
		strings.Repeat("\x00\xff", 100),
		"{\"not\": \"a description\"}",
	} {
		c := inf.Infer(context.Background(), desc)
		require.NotEmpty(t, c.Sender)
		require.NotEmpty(t, c.Recipient)
		require.NotEmpty(t, c.Tone)
		require.Equal(t, "low", c.Confidence)
	}
}
