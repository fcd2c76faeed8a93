package honeybadger

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 配置（逐项覆盖默认值）
	config *config.Config

	// 自定义后端（非 nil 时优先于配置选择的后端）
	backend interfaces.Backend

	// 时钟（测试注入，默认真实时钟）
	clock clock.Clock

	// 指标注册器（nil 表示不注册指标）
	registerer prometheus.Registerer
}

// newOptions 返回默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
		clock:  clock.New(),
	}
}

// apply 依次应用选项
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return fmt.Errorf("apply option: %w", err)
		}
	}
	return nil
}

// WithConfig 整体替换配置
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		o.config = cfg
		return nil
	}
}

// WithAPIKey 设置项目 API 密钥
func WithAPIKey(key string) Option {
	return func(o *options) error {
		o.config.Backend = o.config.Backend.WithAPIKey(key)
		return nil
	}
}

// WithEndpoint 设置后端 API 根地址
func WithEndpoint(endpoint string) Option {
	return func(o *options) error {
		o.config.Backend = o.config.Backend.WithEndpoint(endpoint)
		return nil
	}
}

// WithDevelopment 启用开发模式（Null 后端，不真正上报）
func WithDevelopment() Option {
	return func(o *options) error {
		o.config.Backend.Development = true
		return nil
	}
}

// WithMaxQueueSize 设置队列软上限
func WithMaxQueueSize(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("max queue size must be positive, got %d", n)
		}
		o.config.Worker = o.config.Worker.WithMaxQueueSize(n)
		return nil
	}
}

// WithSuspendInterval 设置账户级失败后的停摆时长
func WithSuspendInterval(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("suspend interval must be positive")
		}
		o.config.Worker = o.config.Worker.WithSuspendInterval(d)
		return nil
	}
}

// WithBackend 使用自定义后端（优先于配置选择的实现）
func WithBackend(b interfaces.Backend) Option {
	return func(o *options) error {
		if b == nil {
			return fmt.Errorf("backend cannot be nil")
		}
		o.backend = b
		return nil
	}
}

// WithClock 注入时钟（测试用）
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		o.clock = c
		return nil
	}
}

// WithMetrics 注册 prometheus 指标到给定 Registerer
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.registerer = reg
		return nil
	}
}
