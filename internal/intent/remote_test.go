package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func classifierStub(t *testing.T, intent string, confidence float64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Text)

		json.NewEncoder(w).Encode(predictResponse{Intent: intent, Confidence: confidence})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteInferencer_HighConfidence(t *testing.T) {
	srv := classifierStub(t, "HR_EMAIL", 0.92)
	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())

	c := inf.Infer(context.Background(), "ask HR about my onboarding documents")
	require.Equal(t, "HR", c.Recipient)
	require.Equal(t, "HR_EMAIL", c.Intent)
	require.Equal(t, "high", c.Confidence)
}

func TestRemoteInferencer_ThresholdBoundary(t *testing.T) {
	// 阈值本身算达标
	srv := classifierStub(t, "MANAGER_EMAIL", 0.6)
	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())

	c := inf.Infer(context.Background(), "tell my manager I will be late")
	require.Equal(t, "Manager", c.Recipient)
	require.Equal(t, "high", c.Confidence)
}

func TestRemoteInferencer_LowConfidenceFallsBack(t *testing.T) {
	srv := classifierStub(t, "CLIENT_EMAIL", 0.41)
	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())

	c := inf.Infer(context.Background(), "some ambiguous request text")
	require.Equal(t, "Recipient", c.Recipient)
	require.Equal(t, "low", c.Confidence)
}

func TestRemoteInferencer_UnknownLabelFallsBack(t *testing.T) {
	srv := classifierStub(t, "PIGEON_EMAIL", 0.99)
	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())

	c := inf.Infer(context.Background(), "some request text for the classifier")
	require.Equal(t, "Recipient", c.Recipient)
	require.Equal(t, "low", c.Confidence)
}

func TestRemoteInferencer_ConfidenceOutOfRangeFallsBack(t *testing.T) {
	srv := classifierStub(t, "HR_EMAIL", 1.7)
	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())

	c := inf.Infer(context.Background(), "some request text for the classifier")
	require.Equal(t, "Recipient", c.Recipient)
	require.Equal(t, "low", c.Confidence)
}

// 分类服务的任何失败都不能向上传播为错误
func TestRemoteInferencer_ServiceFailuresAreAbsorbed(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())
		c := inf.Infer(context.Background(), "some request text for the classifier")
		require.Equal(t, "low", c.Confidence)
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())
		c := inf.Infer(context.Background(), "some request text for the classifier")
		require.Equal(t, "low", c.Confidence)
	})

	t.Run("garbage response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}))
		t.Cleanup(srv.Close)

		inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())
		c := inf.Infer(context.Background(), "some request text for the classifier")
		require.Equal(t, "low", c.Confidence)
	})
}

// 连续失败后熔断器打开，推断依旧返回保底配置
func TestRemoteInferencer_CircuitOpenStillReturnsControls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	inf := NewRemoteInferencer(srv.URL, 0.6, zap.NewNop())
	for i := 0; i < 5; i++ {
		c := inf.Infer(context.Background(), "some request text for the classifier")
		require.Equal(t, "low", c.Confidence)
	}
}
