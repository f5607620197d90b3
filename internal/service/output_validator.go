package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"mailcraft/internal/apperror"
	"mailcraft/internal/model"
	"mailcraft/internal/prompt"
)

// 方括号占位符（[Name]、[Date] 之类），模型被明确禁止输出这些。
// 出现即拒绝：宁可让调用方重试，也不把半成品交给用户。
var placeholderPattern = regexp.MustCompile(`\[[^\]]*\]`)

const bodyMinLength = 20

// ValidateOutput 对抽取出来的对象做结构和内容校验，
// 全部通过后才组装成最终的 GeneratedEmail。
func ValidateOutput(data map[string]any) (*model.GeneratedEmail, error) {
	fields := make(map[string]string, 4)

	for _, name := range []string{"subject", "greeting", "body", "closing"} {
		raw, ok := data[name]
		if !ok {
			return nil, apperror.New(apperror.CodeOutputInvalid, fmt.Sprintf("missing field: %s", name))
		}

		value, ok := raw.(string)
		if !ok {
			return nil, apperror.New(apperror.CodeOutputInvalid, fmt.Sprintf("field is not text: %s", name))
		}

		if strings.TrimSpace(value) == "" {
			return nil, apperror.New(apperror.CodeOutputInvalid, fmt.Sprintf("empty field: %s", name))
		}

		if placeholderPattern.MatchString(value) {
			return nil, apperror.New(apperror.CodeOutputInvalid, fmt.Sprintf("placeholder detected in field: %s", name))
		}

		fields[name] = value
	}

	if utf8.RuneCountInString(fields["subject"]) > prompt.SubjectMaxLength {
		return nil, apperror.New(apperror.CodeOutputInvalid, "subject too long")
	}
	if utf8.RuneCountInString(fields["body"]) < bodyMinLength {
		return nil, apperror.New(apperror.CodeOutputInvalid, "body too short")
	}

	return &model.GeneratedEmail{
		Subject:  fields["subject"],
		Greeting: fields["greeting"],
		Body:     fields["body"],
		Closing:  fields["closing"],
	}, nil
}
