package backend

import (
	"go.uber.org/fx"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
//
// 根据配置选择实现：开发模式用 Null 后端，否则用 HTTP 后端。
func Module() fx.Option {
	return fx.Module("backend",
		fx.Provide(ProvideBackend),
	)
}

// ProvideBackend 提供 Backend 实例
func ProvideBackend(cfg *config.Config) interfaces.Backend {
	if cfg.Backend.Development {
		return NewNull()
	}
	return NewServer(cfg.Backend)
}
