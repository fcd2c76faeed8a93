package worker

import (
	"context"
	"time"

	"github.com/pcreux/honeybadger-go/internal/core/queue"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

// run 消费者主循环
//
// 每次迭代处理一个条目：负载走投递路径，冲刷标记回 signal，
// 关闭令牌触发退出。逃逸出循环的错误视为系统性错误：记录后
// 消费者永久退出，投递核心保持停止直到再次 Start。
func (w *Worker) run(ctx context.Context, killCh, doneCh chan struct{}) {
	defer w.teardown(doneCh)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("消费者循环异常退出", "panic", r)
		}
	}()

	w.mu.Lock()
	w.state = StateRunning
	pid := w.ownerPID
	w.mu.Unlock()
	logger.Debug("消费者已启动", "pid", pid)

	for {
		select {
		case <-killCh:
			logger.Debug("收到强制关闭信号，消费者退出")
			return
		default:
		}

		switch e := w.queue.Pop().(type) {
		case queue.ShutdownToken:
			logger.Debug("收到关闭令牌，消费者退出")
			return
		case *queue.FlushMarker:
			e.Signal()
		case queue.Item:
			w.metrics.SetQueueDepth(w.queue.Len())
			if stop := w.deliver(ctx, killCh, e.Payload); stop {
				return
			}
		}
	}
}

// teardown 消费者清理路径
//
// 无论正常退出、停摆退出还是异常退出都会执行：复位生命周期
// 状态并清空队列、唤醒遗留的冲刷标记，最后关闭 done 通道让
// 等待方返回。
//
// 复位与清空必须在同一个临界区内完成：Flush 在 w.mu 下判断
// 消费者存活并入队标记，因此先于复位入队的标记一定会被这里的
// Clear 唤醒，晚于复位的 Flush 看不到消费者、立即返回。
func (w *Worker) teardown(doneCh chan struct{}) {
	w.mu.Lock()
	if w.state != StateKilled {
		w.state = StateStopped
	}
	w.doneCh = nil
	w.killCh = nil
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	dropped := w.queue.Clear()
	w.mu.Unlock()

	if dropped > 0 {
		logger.Debug("消费者退出时丢弃未投递负载", "count", dropped)
		w.metrics.AddDropped(dropped)
	}
	w.metrics.SetQueueDepth(0)

	close(doneCh)
}

// deliver 投递单个负载并按响应分类处理，返回是否应退出循环
//
// 单条投递的意外错误（panic）在这里兜底：记录、短暂停顿后
// 循环继续，投递核心对瞬时错误自愈。
func (w *Worker) deliver(ctx context.Context, killCh chan struct{}, p types.Payload) (stop bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("单条投递发生意外错误", "id", p.ID(), "panic", r)
			w.metrics.IncFailed()
			w.pause(errorPause, killCh)
		}
	}()

	resp := w.backend.Notify(ctx, types.TopicNotices, p)
	if stop = w.handleResponse(p.ID(), resp); stop {
		return true
	}

	// 节流睡眠施加在投递尝试之后：只放慢后续吞吐，
	// 不延迟已在途的条目
	if iv := w.throttle.IntervalDuration(); iv > 0 {
		w.pause(iv, killCh)
	}
	return false
}

// handleResponse 执行分类器给出的动作，返回是否应退出循环
func (w *Worker) handleResponse(id string, r types.Response) bool {
	switch Classify(r) {
	case ActionThrottle:
		level, interval := w.throttle.Increment()
		w.metrics.SetThrottleLevel(level)
		logger.Warn("后端限流，提升节流级别",
			"id", id, "code", r.Code, "level", level, "interval", interval)

	case ActionSuspend:
		logger.Warn("账户级失败，投递停摆",
			"id", id, "code", r.Code, "message", r.Message,
			"interval", w.cfg.SuspendInterval)
		w.suspendFromLoop(w.cfg.SuspendInterval)
		return true

	case ActionSuccess:
		w.metrics.IncDelivered()
		if level, interval, ok := w.throttle.Decrement(); ok {
			w.metrics.SetThrottleLevel(level)
			logger.Info("投递成功，降低节流级别",
				"id", id, "level", level, "interval", interval)
		} else {
			logger.Info("投递成功", "id", id)
		}

	case ActionStubbed:
		logger.Info("开发模式，本应上报该负载", "id", id)

	case ActionFailure:
		w.metrics.IncFailed()
		logger.Warn("投递失败", "id", id, "response", r.Message)

	case ActionUnknown:
		w.metrics.IncFailed()
		logger.Warn("未知的后端响应", "id", id, "code", r.Code, "message", r.Message)
	}
	return false
}

// pause 可中断睡眠；被强制关闭信号唤醒时返回 false
func (w *Worker) pause(d time.Duration, killCh chan struct{}) bool {
	t := w.clock.Timer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-killCh:
		return false
	}
}
