package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mailcraft/internal/model"
	"mailcraft/pkg/circuitbreaker"
	"mailcraft/pkg/logger"
	"mailcraft/pkg/metrics"
	"mailcraft/pkg/trace"
)

// 分类结果到收件人角色的固定映射；表外标签一律走保底配置
var recipientByIntent = map[string]string{
	"HR_EMAIL":      "HR",
	"MANAGER_EMAIL": "Manager",
	"CLIENT_EMAIL":  "Client",
	"COLLEGE_EMAIL": "College",
}

// RemoteInferencer 调用远程意图分类服务的概率推断策略。
// 分类服务的任何失败（网络、熔断、非法响应、低置信度）都不会向上传播，
// 统一退化为低置信度的保底配置。
type RemoteInferencer struct {
	baseURL    string
	threshold  float64
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewRemoteInferencer(baseURL string, threshold float64, log *zap.Logger) *RemoteInferencer {
	// 分类只是一个字段的优化，阈值收紧以便快速失败
	cbConfig := circuitbreaker.Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		OpenTimeout:         30 * time.Second,
		HalfOpenMaxRequests: 2,
	}

	return &RemoteInferencer{
		baseURL:   baseURL,
		threshold: threshold,
		httpClient: &http.Client{
			Timeout: 5 * time.Second, // 推断不能拖慢整条流水线
		},
		cb:     circuitbreaker.New(cbConfig),
		logger: log,
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

func (r *RemoteInferencer) Infer(ctx context.Context, description string) model.Controls {
	label, confidence, err := r.predict(ctx, description)
	if err != nil {
		logger.WithTrace(ctx, r.logger).Warn("Intent classifier unavailable, using neutral controls",
			zap.Error(err),
		)
		return neutralControls()
	}

	if confidence < r.threshold {
		// 低置信度不报错也不猜测，保持中性输出
		return neutralControls()
	}

	recipient, ok := recipientByIntent[label]
	if !ok {
		return neutralControls()
	}

	c := neutralControls()
	c.Recipient = recipient
	c.Intent = label
	c.Confidence = "high"
	return c
}

// predict 调用分类服务，带熔断保护
func (r *RemoteInferencer) predict(ctx context.Context, text string) (string, float64, error) {
	var result predictResponse

	err := r.cb.Execute(func() error {
		start := time.Now()
		b, marshalErr := json.Marshal(predictRequest{Text: text})
		if marshalErr != nil {
			return marshalErr
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(b))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Content-Type", "application/json")
		// 传播 trace_id
		if traceID := trace.FromContext(ctx); traceID != "" {
			req.Header.Set(trace.HeaderName(), traceID)
		}

		resp, doErr := r.httpClient.Do(req)
		latency := time.Since(start)
		if doErr != nil {
			metrics.RecordClassifierCallLatency("error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			metrics.RecordClassifierCallLatency(fmt.Sprintf("%d", resp.StatusCode), latency)
			return fmt.Errorf("classifier service error: %d", resp.StatusCode)
		}

		metrics.RecordClassifierCallLatency("success", latency)
		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		return "", 0, err
	}

	if result.Confidence < 0 || result.Confidence > 1 {
		return "", 0, fmt.Errorf("classifier returned confidence out of range: %f", result.Confidence)
	}

	return result.Intent, result.Confidence, nil
}
