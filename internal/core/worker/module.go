package worker

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/internal/core/queue"
	"github.com/pcreux/honeybadger-go/internal/core/throttle"
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块输入参数
type Params struct {
	fx.In

	Config   *config.Config
	Queue    *queue.Queue
	Throttle *throttle.Controller
	Backend  interfaces.Backend
	Clock    clock.Clock
	Metrics  *Metrics `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("worker",
		fx.Provide(ProvideWorker),
	)
}

// ProvideWorker 提供 Worker 实例
func ProvideWorker(p Params) *Worker {
	return New(p.Config.Worker, p.Queue, p.Throttle, p.Backend, p.Clock, p.Metrics)
}
