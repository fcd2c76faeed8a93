package honeybadger

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/lib/log"

	// Core Layer
	"github.com/pcreux/honeybadger-go/internal/core/backend"
	"github.com/pcreux/honeybadger-go/internal/core/queue"
	"github.com/pcreux/honeybadger-go/internal/core/throttle"
	"github.com/pcreux/honeybadger-go/internal/core/worker"
)

var fxLogger = log.Logger("honeybadger/fx")

// buildFxApp 构建 Fx 应用
//
// 组装内部组件，按依赖顺序：
//  1. 配置与时钟注入
//  2. 叶子组件：Queue → Throttle → Backend
//  3. 投递核心：Worker
func buildFxApp(o *options, a *Agent) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.config.Worker.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if o.backend == nil {
		// 使用内置后端时才校验后端配置（自定义后端无需密钥）
		if err := o.config.Backend.Validate(); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 模块组装
	// ════════════════════════════════════════════════════════════════════════
	modules := []fx.Option{
		// 配置与时钟注入
		fx.Supply(o.config),
		fx.Provide(func() clock.Clock { return o.clock }),
		fx.Provide(func() *worker.Metrics {
			if o.registerer == nil {
				return nil
			}
			return worker.NewMetrics(o.registerer)
		}),

		// 叶子组件
		queue.Module(),
		throttle.Module(),
	}

	// 后端：自定义优先，否则按配置选择
	if o.backend != nil {
		modules = append(modules, fx.Provide(func() interfaces.Backend { return o.backend }))
	} else {
		modules = append(modules, backend.Module())
	}

	// 投递核心
	modules = append(modules, worker.Module())

	// 取出 Worker 供 Agent 使用
	modules = append(modules, fx.Populate(&a.worker))

	// 静默 Fx 自身日志（库不应污染宿主输出）
	modules = append(modules, fx.NopLogger)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		fxLogger.Error("组件装配失败", "error", err)
		return nil, fmt.Errorf("build agent: %w", err)
	}
	return app, nil
}
