package service

import (
	"strings"
	"unicode/utf8"

	"mailcraft/internal/apperror"
)

const (
	// 描述太短没有可写的内容，太长说明用户贴了整封邮件进来
	descriptionMinLength = 10
	descriptionMaxLength = 500
)

// ValidateDescription 在任何外部调用之前拦截不可用的输入，
// 避免把配额浪费在注定失败的请求上。
func ValidateDescription(desc string) error {
	if utf8.RuneCountInString(strings.TrimSpace(desc)) < descriptionMinLength {
		return apperror.New(apperror.CodeInvalidInput, "description too short")
	}
	if utf8.RuneCountInString(desc) > descriptionMaxLength {
		return apperror.New(apperror.CodeInvalidInput, "description too long")
	}
	return nil
}
