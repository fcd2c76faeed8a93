package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig 测试默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1000, cfg.Worker.MaxQueueSize)
	assert.Equal(t, 5*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, time.Second, cfg.Worker.KillTimeout)
	assert.Equal(t, time.Hour, cfg.Worker.SuspendInterval)

	assert.Equal(t, "https://api.honeybadger.io", cfg.Backend.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.Backend.Development)

	t.Log("✅ 默认配置测试通过")
}

// TestConfigValidate 测试配置验证
func TestConfigValidate(t *testing.T) {
	t.Run("默认配置需要密钥", func(t *testing.T) {
		cfg := NewConfig()
		require.Error(t, cfg.Validate())

		cfg.Backend = cfg.Backend.WithAPIKey("key")
		require.NoError(t, cfg.Validate())
	})

	t.Run("开发模式不需要密钥", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Backend.Development = true
		require.NoError(t, cfg.Validate())
	})

	t.Run("队列上限必须为正", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Backend = cfg.Backend.WithAPIKey("key")
		cfg.Worker = cfg.Worker.WithMaxQueueSize(0)
		require.Error(t, cfg.Validate())
	})

	t.Run("停摆时长必须为正", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Backend = cfg.Backend.WithAPIKey("key")
		cfg.Worker = cfg.Worker.WithSuspendInterval(-time.Minute)
		require.Error(t, cfg.Validate())
	})

	t.Run("后端地址不能为空", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Backend = cfg.Backend.WithAPIKey("key").WithEndpoint("")
		require.Error(t, cfg.Validate())
	})

	t.Log("✅ 配置验证测试通过")
}

// TestWorkerConfigChaining 测试链式覆盖
func TestWorkerConfigChaining(t *testing.T) {
	cfg := DefaultWorkerConfig().
		WithMaxQueueSize(50).
		WithSuspendInterval(10 * time.Minute)

	assert.Equal(t, 50, cfg.MaxQueueSize)
	assert.Equal(t, 10*time.Minute, cfg.SuspendInterval)

	// 链式方法是值语义，原默认值不受影响
	assert.Equal(t, 1000, DefaultWorkerConfig().MaxQueueSize)
}
