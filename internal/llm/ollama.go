package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mailcraft/internal/apperror"
	"mailcraft/pkg/metrics"
)

// OllamaConfig 本地 ollama 服务配置
type OllamaConfig struct {
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// OllamaGateway 调用本地 ollama 服务的 /api/chat 接口
type OllamaGateway struct {
	config     OllamaConfig
	httpClient *http.Client
}

func NewOllamaGateway(cfg OllamaConfig) *OllamaGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	return &OllamaGateway{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (g *OllamaGateway) Provider() string {
	return "ollama"
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Stream   bool                `json:"stream"`
	Format   string              `json:"format,omitempty"`
	Options  ollamaOptions       `json:"options"`
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
}

func (g *OllamaGateway) Generate(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]ollamaChatMessage, len(messages))
	for i, m := range messages {
		msgs[i] = ollamaChatMessage{Role: m.Role, Content: m.Content}
	}

	payload := ollamaChatRequest{
		Model:    g.config.Model,
		Messages: msgs,
		Stream:   false,
		// json 模式等价于托管后端的 structured output 请求，同样不被假设生效
		Format: "json",
		Options: ollamaOptions{
			Temperature: g.config.Temperature,
			NumPredict:  g.config.MaxTokens,
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, "failed to encode ollama request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/api/chat", bytes.NewReader(b))
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, "failed to build ollama request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.RecordLLMCallLatency(g.Provider(), "error", time.Since(start))
		return "", apperror.Wrap(apperror.CodeLLMUnavailable, "local model server unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordLLMCallLatency(g.Provider(), fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		return "", apperror.Wrap(apperror.CodeLLMUnavailable, "local model server error",
			fmt.Errorf("ollama returned status %d", resp.StatusCode))
	}
	metrics.RecordLLMCallLatency(g.Provider(), "success", time.Since(start))

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.Wrap(apperror.CodeLLMUnavailable, "failed to decode ollama response", err)
	}

	if strings.TrimSpace(out.Message.Content) == "" {
		return "", apperror.New(apperror.CodeLLMEmptyResponse, "model returned an empty reply")
	}

	return out.Message.Content, nil
}
