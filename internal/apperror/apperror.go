// Package apperror defines the single tagged error type that flows through
// the generation pipeline. Callers branch on Code, never on message text.
package apperror

import "errors"

// 错误码即对外契约，增删需要同步调用方
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeLLMUnavailable      = "LLM_UNAVAILABLE"
	CodeLLMEmptyResponse    = "LLM_EMPTY_RESPONSE"
	CodeLLMInvalidOutput    = "LLM_INVALID_OUTPUT"
	CodeLLMInvalidJSON      = "LLM_INVALID_JSON"
	CodeOutputInvalid       = "OUTPUT_INVALID"
	CodeTranscriptionFailed = "TRANSCRIPTION_FAILED"
	CodeInternal            = "INTERNAL"
)

// ServiceError 贯穿整个流水线的带码错误
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func New(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// Wrap 保留底层错误（传输层超时等），便于日志排查
func Wrap(code, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: message, Err: err}
}

// CodeOf 提取错误码；非 ServiceError 一律视为 INTERNAL
func CodeOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternal
}

// MessageOf 提取对外展示的错误信息
func MessageOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "internal error"
}
