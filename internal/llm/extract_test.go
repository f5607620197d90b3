package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mailcraft/internal/apperror"
)

func TestExtractObject_CleanJSON(t *testing.T) {
	obj, err := ExtractObject(`{"subject":"Hello","body":"World"}`)
	require.NoError(t, err)
	require.Equal(t, "Hello", obj["subject"])
	require.Equal(t, "World", obj["body"])
}

func TestExtractObject_SurroundingCommentary(t *testing.T) {
	raw := "Sure! Here is your email:\n" +
		`{"subject":"Fee Reminder","greeting":"Dear Academic Office,","body":"I would like to remind you about the exam fee due next week.","closing":"Best regards,\nAna"}` +
		"\nLet me know if you need anything else."

	obj, err := ExtractObject(raw)
	require.NoError(t, err)
	require.Equal(t, "Fee Reminder", obj["subject"])
	require.Equal(t, "Dear Academic Office,", obj["greeting"])
	require.Equal(t, "I would like to remind you about the exam fee due next week.", obj["body"])
	require.Equal(t, "Best regards,\nAna", obj["closing"])
	require.Len(t, obj, 4)
}

func TestExtractObject_CodeFencedJSON(t *testing.T) {
	raw := "```json\n{\"subject\":\"Hi\",\"body\":\"there\"}\n```"

	obj, err := ExtractObject(raw)
	require.NoError(t, err)
	require.Equal(t, "Hi", obj["subject"])
}

func TestExtractObject_NestedBracesInValues(t *testing.T) {
	raw := `prefix {"subject":"Budget {Q3}","body":"see {attached}"} suffix`

	obj, err := ExtractObject(raw)
	require.NoError(t, err)
	require.Equal(t, "Budget {Q3}", obj["subject"])
	require.Equal(t, "see {attached}", obj["body"])
}

func TestExtractObject_RepairsAlmostJSON(t *testing.T) {
	// 单引号和尾逗号是小模型的常见毛病
	raw := `{'subject': 'Hello', 'body': 'World',}`

	obj, err := ExtractObject(raw)
	require.NoError(t, err)
	require.Equal(t, "Hello", obj["subject"])
	require.Equal(t, "World", obj["body"])
}

func TestExtractObject_NoBraceRegion(t *testing.T) {
	for _, raw := range []string{
		"",
		"I am sorry, I cannot write that email.",
		"[1,2,3]",
		"42",
	} {
		_, err := ExtractObject(raw)
		require.Error(t, err, "input: %q", raw)
		require.Equal(t, apperror.CodeLLMInvalidOutput, apperror.CodeOf(err), "input: %q", raw)
	}
}

func TestExtractObject_UnbalancedBraces(t *testing.T) {
	// "}" 在 "{" 之前，不构成对象区域
	_, err := ExtractObject("} nothing here {")
	require.Error(t, err)
	require.Equal(t, apperror.CodeLLMInvalidOutput, apperror.CodeOf(err))
}
