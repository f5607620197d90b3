package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"mailcraft/internal/apperror"
	"mailcraft/pkg/metrics"
)

// OpenAIConfig 兼容 OpenAI 协议的托管后端配置（OpenAI、Groq 等）
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// OpenAIGateway 通过 OpenAI 兼容 API 调用托管模型
type OpenAIGateway struct {
	client *openai.Client
	config OpenAIConfig
}

func NewOpenAIGateway(cfg OpenAIConfig) *OpenAIGateway {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIGateway{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

func (g *OpenAIGateway) Provider() string {
	return "openai"
}

func (g *OpenAIGateway) Generate(ctx context.Context, messages []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	llmMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		llmMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Messages:    llmMessages,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
		// 要求结构化输出；下游抽取不依赖这一点，模型可能不遵守
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		metrics.RecordLLMCallLatency(g.Provider(), "error", time.Since(start))
		return "", apperror.Wrap(apperror.CodeLLMUnavailable, "text generation backend unreachable", err)
	}
	metrics.RecordLLMCallLatency(g.Provider(), "success", time.Since(start))

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", apperror.New(apperror.CodeLLMEmptyResponse, "model returned an empty reply")
	}

	return resp.Choices[0].Message.Content, nil
}
