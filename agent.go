package honeybadger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/pcreux/honeybadger-go/internal/core/worker"
	"github.com/pcreux/honeybadger-go/pkg/lib/log"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

var logger = log.Logger("honeybadger")

// 生命周期超时配置
const (
	// fxStartTimeout Fx 应用启动超时（纯装配，无耗时钩子）
	fxStartTimeout = 10 * time.Second

	// fxStopTimeout Fx 应用停止超时
	fxStopTimeout = 10 * time.Second
)

// Agent 异步投递代理
//
// Agent 是用户与投递管线交互的主入口（门面），聚合内部组件。
// 所有生产者方法都不会因投递失败而 panic 或返回 error：
// 失败通过日志和布尔返回值反馈。
//
// 使用示例：
//
//	agent, err := honeybadger.New(
//	    honeybadger.WithAPIKey("project-api-key"),
//	    honeybadger.WithMaxQueueSize(500),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer agent.Close()
//
//	agent.Notify(errors.New("boom"))
//	agent.Flush()
type Agent struct {
	// app Fx 应用
	app *fx.App

	// worker 投递核心（由 Fx 注入）
	worker *worker.Worker

	// 生命周期状态
	mu     sync.Mutex
	closed bool
}

// New 创建并装配 Agent
//
// 消费者不会立即启动：首个 Notify/Push 或显式 Start 会启动它。
func New(opts ...Option) (*Agent, error) {
	o := newOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}

	a := &Agent{}
	app, err := buildFxApp(o, a)
	if err != nil {
		return nil, err
	}
	a.app = app

	ctx, cancel := context.WithTimeout(context.Background(), fxStartTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	logger.Debug("agent 已装配", "max_queue_size", o.config.Worker.MaxQueueSize)
	return a, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              生产者接口
// ════════════════════════════════════════════════════════════════════════════

// Notify 上报一个 error
//
// 构造标准通知负载并入队。返回 false 表示负载被丢弃
// （队列超限、停摆窗口生效或已关闭）。
func (a *Agent) Notify(err error) bool {
	if err == nil {
		return false
	}
	return a.worker.Push(types.NewNoticeFromError(err))
}

// NotifyPayload 上报一个自定义负载
func (a *Agent) NotifyPayload(p types.Payload) bool {
	if p == nil {
		return false
	}
	return a.worker.Push(p)
}

// Flush 阻塞直到此前入队的全部负载都已交给后端
func (a *Agent) Flush() {
	a.worker.Flush()
}

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期
// ════════════════════════════════════════════════════════════════════════════

// Start 显式启动消费者
//
// 通常不需要调用：Notify 会按需启动。停摆窗口生效或关闭
// 已请求时返回 ErrStartRefused，Agent 已关闭时返回 ErrAgentClosed。
func (a *Agent) Start() error {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return ErrAgentClosed
	}

	if !a.worker.Start() {
		return ErrStartRefused
	}
	return nil
}

// Stop 优雅关闭消费者：排空已入队的工作后退出
func (a *Agent) Stop() error {
	return a.worker.Shutdown()
}

// Kill 强制关闭消费者：清空队列，未投递的负载被丢弃
func (a *Agent) Kill() error {
	return a.worker.Kill()
}

// State 返回投递核心的运行状态
func (a *Agent) State() string {
	return a.worker.State().String()
}

// Suspended 报告停摆窗口是否仍然生效
func (a *Agent) Suspended() bool {
	return a.worker.Suspended()
}

// Close 关闭 Agent：优雅关闭消费者并停止组件装配。幂等。
func (a *Agent) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()

	err := a.worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), fxStopTimeout)
	defer cancel()
	err = multierr.Append(err, a.app.Stop(ctx))

	if err != nil {
		logger.Warn("agent 关闭时发生错误", "error", err)
	}
	return err
}
