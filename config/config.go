// Package config 提供统一的配置管理
package config

import "fmt"

// Config honeybadger 总配置
//
// 聚合各子配置。零值不可直接使用，应从 NewConfig 出发，
// 再用 With* 方法按需覆盖。
type Config struct {
	// Worker 投递核心配置
	Worker WorkerConfig `json:"worker"`

	// Backend 后端传输配置
	Backend BackendConfig `json:"backend"`
}

// NewConfig 返回默认总配置
func NewConfig() *Config {
	return &Config{
		Worker:  DefaultWorkerConfig(),
		Backend: DefaultBackendConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.Worker.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Backend.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
