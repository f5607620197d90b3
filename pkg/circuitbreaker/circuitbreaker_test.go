package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testConfig() Config {
	return Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		OpenTimeout:         50 * time.Millisecond,
		HalfOpenMaxRequests: 2,
	}
}

func fail() error { return errBoom }
func ok() error   { return nil }

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Execute(fail), errBoom)
	}

	// 熔断打开后直接拒绝，不再调用下游
	err := cb.Execute(func() error {
		t.Fatal("downstream must not be called while open")
		return nil
	})
	require.ErrorIs(t, err, ErrOpen)
	require.Equal(t, StateOpen, cb.GetState())
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())

	require.Error(t, cb.Execute(fail))
	require.Error(t, cb.Execute(fail))
	require.NoError(t, cb.Execute(ok))
	require.Error(t, cb.Execute(fail))
	require.Error(t, cb.Execute(fail))

	require.Equal(t, StateClosed, cb.GetState())
}

func TestRecoversThroughHalfOpen(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(fail))
	}
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(60 * time.Millisecond)

	// 半开状态放行试探请求，连续成功后关闭
	require.NoError(t, cb.Execute(ok))
	require.NoError(t, cb.Execute(ok))
	require.NoError(t, cb.Execute(ok))
	require.Equal(t, StateClosed, cb.GetState())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(fail))
	}
	time.Sleep(60 * time.Millisecond)

	require.ErrorIs(t, cb.Execute(fail), errBoom)
	require.Equal(t, StateOpen, cb.GetState())
}
