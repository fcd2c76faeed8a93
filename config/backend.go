package config

import (
	"fmt"
	"net/url"
	"time"
)

// BackendConfig 后端传输配置
//
// 配置 HTTP 后端的目标地址与凭证。Development 为 true 时
// 使用 Null 后端，通知不会真正上报。
type BackendConfig struct {
	// Endpoint 后端 API 根地址
	// 默认值: "https://api.honeybadger.io"
	Endpoint string `json:"endpoint"`

	// APIKey 项目 API 密钥
	APIKey string `json:"api_key"`

	// Timeout 单次投递请求的超时
	// 默认值: 15s
	Timeout time.Duration `json:"timeout"`

	// Development 开发模式（使用 Null 后端，仅记录日志）
	Development bool `json:"development"`
}

// DefaultBackendConfig 返回默认的后端配置
func DefaultBackendConfig() BackendConfig {
	return BackendConfig{
		Endpoint: "https://api.honeybadger.io",
		Timeout:  15 * time.Second,
	}
}

// Validate 验证后端配置的有效性
func (c *BackendConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("backend: endpoint cannot be empty")
	}
	if _, err := url.Parse(c.Endpoint); err != nil {
		return fmt.Errorf("backend: invalid endpoint: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("backend: timeout must be positive")
	}
	// 开发模式不需要密钥
	if !c.Development && c.APIKey == "" {
		return fmt.Errorf("backend: api_key required outside development mode")
	}
	return nil
}

// WithEndpoint 设置后端地址
func (c BackendConfig) WithEndpoint(endpoint string) BackendConfig {
	c.Endpoint = endpoint
	return c
}

// WithAPIKey 设置 API 密钥
func (c BackendConfig) WithAPIKey(key string) BackendConfig {
	c.APIKey = key
	return c
}
