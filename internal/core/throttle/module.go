package throttle

import "go.uber.org/fx"

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("throttle",
		fx.Provide(New),
	)
}
