package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LLM 调用延迟（毫秒）
	LLMCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_latency_ms",
			Help:    "LLM backend call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"provider", "status"},
	)

	// 分类服务调用延迟（毫秒）
	ClassifierCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classifier_call_latency_ms",
			Help:    "Intent classifier service call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"status"},
	)

	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 邮件生成计数
	EmailGeneratedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_generated_count",
			Help: "Total number of email generation attempts",
		},
		[]string{"outcome"}, // outcome: success 或错误码
	)

	// 语音转写计数
	TranscriptionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcription_count",
			Help: "Total number of audio transcriptions",
		},
		[]string{"status"}, // status: success, failed
	)
)

// RecordLLMCallLatency 记录 LLM 调用延迟
func RecordLLMCallLatency(provider, status string, duration time.Duration) {
	LLMCallLatency.WithLabelValues(provider, status).Observe(float64(duration.Milliseconds()))
}

// RecordClassifierCallLatency 记录分类服务调用延迟
func RecordClassifierCallLatency(status string, duration time.Duration) {
	ClassifierCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementEmailGenerated 增加邮件生成计数
func IncrementEmailGenerated(outcome string) {
	EmailGeneratedCount.WithLabelValues(outcome).Inc()
}

// IncrementTranscription 增加语音转写计数
func IncrementTranscription(status string) {
	TranscriptionCount.WithLabelValues(status).Inc()
}
