package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mailcraft/internal/apperror"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "    \n\t  ", true},
		{"nine chars", "123456789", true},
		{"nine chars padded with spaces", "   123456789   ", true},
		{"exactly ten chars", "1234567890", false},
		{"typical request", "Remind the client about the overdue invoice", false},
		{"exactly five hundred chars", strings.Repeat("a", 500), false},
		{"five hundred and one chars", strings.Repeat("a", 501), true},
		{"long but mostly whitespace", strings.Repeat(" ", 495) + "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.desc)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
