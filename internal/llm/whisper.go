package llm

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"mailcraft/internal/apperror"
	"mailcraft/pkg/metrics"
)

// WhisperConfig 语音转写配置，复用托管后端的凭证
type WhisperConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// WhisperTranscriber 通过 Whisper 接口把音频转成文本
type WhisperTranscriber struct {
	client *openai.Client
	config WhisperConfig
}

func NewWhisperTranscriber(cfg WhisperConfig) *WhisperTranscriber {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &WhisperTranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Transcribe 转写音频字节；文件名用于让后端识别容器格式
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	req := openai.AudioRequest{
		Model:       t.config.Model,
		FilePath:    filename,
		Reader:      bytes.NewReader(audio),
		Temperature: 0,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		metrics.IncrementTranscription("failed")
		return "", apperror.Wrap(apperror.CodeTranscriptionFailed, "failed to process audio file", err)
	}
	metrics.IncrementTranscription("success")

	return strings.TrimSpace(resp.Text), nil
}
