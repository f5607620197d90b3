package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mailcraft/internal/apperror"
)

func validOutput() map[string]any {
	return map[string]any{
		"subject":  "Fee Reminder",
		"greeting": "Dear Academic Office,",
		"body":     "I would like to remind you about the exam fee due next week.",
		"closing":  "Best regards,\nAna",
	}
}

func TestValidateOutput_Valid(t *testing.T) {
	email, err := ValidateOutput(validOutput())
	require.NoError(t, err)
	require.Equal(t, "Fee Reminder", email.Subject)
	require.Equal(t, "Dear Academic Office,", email.Greeting)
	require.Equal(t, "I would like to remind you about the exam fee due next week.", email.Body)
	require.Equal(t, "Best regards,\nAna", email.Closing)
}

func TestValidateOutput_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing subject", func(m map[string]any) { delete(m, "subject") }},
		{"missing greeting", func(m map[string]any) { delete(m, "greeting") }},
		{"missing body", func(m map[string]any) { delete(m, "body") }},
		{"missing closing", func(m map[string]any) { delete(m, "closing") }},
		{"empty subject", func(m map[string]any) { m["subject"] = "   " }},
		{"non-string body", func(m map[string]any) { m["body"] = 42.0 }},
		{"body below minimum", func(m map[string]any) { m["body"] = "too short" }},
		{"subject above maximum", func(m map[string]any) { m["subject"] = strings.Repeat("x", 151) }},
		{"placeholder in body", func(m map[string]any) {
			m["body"] = "Please pay the fee of [Amount] before the deadline we discussed."
		}},
		{"placeholder in closing", func(m map[string]any) { m["closing"] = "Best regards,\n[Name]" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validOutput()
			tt.mutate(data)

			_, err := ValidateOutput(data)
			require.Error(t, err)
			require.Equal(t, apperror.CodeOutputInvalid, apperror.CodeOf(err))
		})
	}
}

func TestValidateOutput_SubjectAtMaximum(t *testing.T) {
	data := validOutput()
	data["subject"] = strings.Repeat("x", 150)

	_, err := ValidateOutput(data)
	require.NoError(t, err)
}
