package config

import (
	"fmt"
	"time"
)

// WorkerConfig 投递核心配置
//
// 控制队列容量与关闭行为。节流与暂停策略由响应分类驱动，
// 不在配置范围内。
type WorkerConfig struct {
	// MaxQueueSize 队列软上限
	// 超过上限的 push 会被丢弃（记录警告，不阻塞生产者）
	// 默认值: 1000
	MaxQueueSize int `json:"max_queue_size"`

	// ShutdownTimeout 优雅关闭时等待消费者退出的上限
	// 超时后升级为强制关闭
	// 默认值: 5s
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// KillTimeout 强制关闭时等待消费者清理路径完成的上限
	//
	// Go 没有强制终止 goroutine 的原语，强制关闭通过协作式
	// 取消信号实现，消费者在每次睡眠和出队前检查该信号，
	// 因此强制关闭最多有一个检查间隔的延迟。
	// 默认值: 1s
	KillTimeout time.Duration `json:"kill_timeout"`

	// SuspendInterval 账户级失败（402/403）后的停摆时长
	// 停摆窗口内 Start 会被拒绝
	// 默认值: 1h
	SuspendInterval time.Duration `json:"suspend_interval"`
}

// DefaultWorkerConfig 返回默认的投递核心配置
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxQueueSize:    1000,
		ShutdownTimeout: 5 * time.Second,
		KillTimeout:     time.Second,
		SuspendInterval: time.Hour,
	}
}

// Validate 验证投递核心配置的有效性
func (c *WorkerConfig) Validate() error {
	if c.MaxQueueSize <= 0 {
		return fmt.Errorf("worker: max_queue_size must be positive, got %d", c.MaxQueueSize)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("worker: shutdown_timeout must be positive")
	}
	if c.KillTimeout <= 0 {
		return fmt.Errorf("worker: kill_timeout must be positive")
	}
	if c.SuspendInterval <= 0 {
		return fmt.Errorf("worker: suspend_interval must be positive")
	}
	return nil
}

// WithMaxQueueSize 设置队列软上限
func (c WorkerConfig) WithMaxQueueSize(n int) WorkerConfig {
	c.MaxQueueSize = n
	return c
}

// WithSuspendInterval 设置停摆时长
func (c WorkerConfig) WithSuspendInterval(d time.Duration) WorkerConfig {
	c.SuspendInterval = d
	return c
}
