// Package worker 实现异步投递核心
//
// 生产者通过 Push 入队负载，单个后台消费者 goroutine 排空队列、
// 调用后端并根据响应分类驱动节流控制。支持优雅关闭、强制关闭、
// 账户级停摆窗口和冲刷同步。
//
// 不变量：
//   - 任意时刻至多一个存活的消费者 goroutine
//   - 队列跨所有生产者严格 FIFO，消费者每次只处理一个条目
//   - 锁内只做状态变更，网络调用永远在锁外
//
// Go 没有强制终止 goroutine 的原语，强制关闭（Kill）通过
// 协作式取消实现：消费者在每次睡眠与循环迭代前检查取消信号，
// 在途的后端调用通过 context 取消。因此 Kill 是有界等待而非
// 瞬时终止，延迟上限由 KillTimeout 配置。
package worker

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/internal/core/queue"
	"github.com/pcreux/honeybadger-go/internal/core/throttle"
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/lib/log"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

var logger = log.Logger("core/worker")

// errorPause 单条投递意外失败后的短暂停顿
const errorPause = time.Second

// Worker 异步投递核心
type Worker struct {
	// ────────────────────────────────────────────────────────────────────────
	// 不可变依赖（构造时注入）
	// ────────────────────────────────────────────────────────────────────────

	cfg      config.WorkerConfig
	backend  interfaces.Backend
	clock    clock.Clock
	metrics  *Metrics
	queue    *queue.Queue
	throttle *throttle.Controller

	// ────────────────────────────────────────────────────────────────────────
	// 生命周期状态（mu 保护）
	// ────────────────────────────────────────────────────────────────────────

	mu           sync.Mutex
	state        RunState
	shutdown     bool      // 关闭已请求
	suspendUntil time.Time // 停摆窗口截止时间，零值表示无窗口
	ownerPID     int       // 启动消费者时记录的进程号，关闭时清零

	killCh chan struct{}      // 当前消费者的协作取消信号
	doneCh chan struct{}      // 当前消费者退出时关闭
	cancel context.CancelFunc // 取消在途的后端调用
}

// New 创建投递核心（不启动消费者）
func New(
	cfg config.WorkerConfig,
	q *queue.Queue,
	t *throttle.Controller,
	b interfaces.Backend,
	clk clock.Clock,
	m *Metrics,
) *Worker {
	return &Worker{
		cfg:      cfg,
		backend:  b,
		clock:    clk,
		metrics:  m,
		queue:    q,
		throttle: t,
		state:    StateStopped,
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              生产者接口
// ════════════════════════════════════════════════════════════════════════════

// Push 入队一个负载
//
// 先确保消费者在运行（停摆窗口内启动被拒绝，此时负载被丢弃）；
// 随后检查软上限：队列超限时记录警告并丢弃。除获取队列锁外
// 生产者永不阻塞，丢弃是终态（无重试）。
func (w *Worker) Push(p types.Payload) bool {
	if !w.Start() {
		logger.Debug("投递核心无法启动，负载被丢弃", "id", p.ID())
		w.metrics.IncDropped()
		return false
	}

	if w.queue.Len() > w.cfg.MaxQueueSize {
		logger.Warn("队列超过软上限，负载被丢弃",
			"id", p.ID(), "max_queue_size", w.cfg.MaxQueueSize)
		w.metrics.IncDropped()
		return false
	}

	w.queue.Push(queue.Item{Payload: p})
	w.metrics.SetQueueDepth(w.queue.Len())

	// 入队可能与消费者的清理路径交错（清理复位 doneCh 并清空队列）。
	// 复查存活状态：消费者异常退出时拉起新消费者处理已入队的负载；
	// 无法重启（关闭/停摆）时，负载已由清理路径统一丢弃并记录
	w.mu.Lock()
	alive := w.doneCh != nil
	w.mu.Unlock()
	if !alive {
		w.Start()
	}
	return true
}

// Flush 阻塞直到此前入队的全部负载都已交给后端
//
// 向队列注入一个新的冲刷标记并等待消费者回signal。
// 没有存活消费者时立即返回。
func (w *Worker) Flush() {
	w.mu.Lock()
	if w.doneCh == nil {
		w.mu.Unlock()
		return
	}
	m := queue.NewFlushMarker()
	w.queue.Push(m)
	w.mu.Unlock()

	<-m.Done()
}

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期
// ════════════════════════════════════════════════════════════════════════════

// Start 启动消费者
//
// 重启门闸：关闭未被请求，或停摆窗口已过，才允许启动。
// 启动会清除停摆状态；已有存活消费者时幂等返回 true。
func (w *Worker) Start() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.shutdown {
		if w.suspendUntil.IsZero() {
			return false
		}
		if w.clock.Now().Before(w.suspendUntil) {
			return false
		}
	}

	w.shutdown = false
	w.suspendUntil = time.Time{}

	if w.doneCh != nil {
		// 已有存活消费者
		return true
	}

	w.ownerPID = os.Getpid()
	w.state = StateStarting
	w.killCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.run(ctx, w.killCh, w.doneCh)

	logger.Debug("消费者已派生", "pid", w.ownerPID)
	return true
}

// Shutdown 优雅关闭
//
// 标记关闭、清除持有进程号，并入队关闭令牌：消费者排空令牌
// 之前的全部工作后退出。等待消费者退出超时则升级为 Kill。幂等。
func (w *Worker) Shutdown() error {
	w.mu.Lock()
	w.shutdown = true
	w.ownerPID = 0

	done := w.doneCh
	if done == nil {
		// 无存活消费者，直接返回
		w.mu.Unlock()
		return nil
	}

	w.state = StateShuttingDown
	w.queue.Push(queue.ShutdownToken{})
	w.mu.Unlock()

	t := w.clock.Timer(w.cfg.ShutdownTimeout)
	defer t.Stop()
	select {
	case <-done:
		logger.Debug("消费者已优雅退出")
		return nil
	case <-t.C:
		logger.Warn("优雅关闭超时，升级为强制关闭",
			"timeout", w.cfg.ShutdownTimeout)
		return w.Kill()
	}
}

// Kill 强制关闭
//
// 清空队列（在途未投递的负载被丢弃，不做冲刷），唤醒被清除的
// 冲刷标记，向消费者发出协作取消信号并有界等待其清理路径完成。
// 总是成功。
func (w *Worker) Kill() error {
	w.mu.Lock()
	w.shutdown = true
	w.ownerPID = 0
	w.state = StateKilled

	if dropped := w.queue.Clear(); dropped > 0 {
		logger.Warn("强制关闭丢弃未投递负载", "count", dropped)
		w.metrics.AddDropped(dropped)
	}
	w.metrics.SetQueueDepth(0)

	done := w.doneCh
	if done != nil {
		if w.killCh != nil {
			close(w.killCh)
			w.killCh = nil
		}
		if w.cancel != nil {
			w.cancel()
		}
		// 消费者可能阻塞在出队上，补一个关闭令牌唤醒它；
		// 多余的令牌由消费者的清理路径回收
		w.queue.Push(queue.ShutdownToken{})
	}
	w.mu.Unlock()

	if done != nil {
		t := w.clock.Timer(w.cfg.KillTimeout)
		defer t.Stop()
		select {
		case <-done:
		case <-t.C:
			logger.Warn("消费者未在强制关闭期限内退出",
				"timeout", w.cfg.KillTimeout)
		}
	}
	return nil
}

// Suspend 设置停摆窗口并强制关闭
//
// 窗口内的 Start 会被拒绝，窗口过后 Start 自然恢复。
// 用于后端报告账户级、不可重试的失败（计费/鉴权）。
func (w *Worker) Suspend(interval time.Duration) error {
	w.mu.Lock()
	w.suspendUntil = w.clock.Now().Add(interval)
	w.mu.Unlock()

	return w.Kill()
}

// suspendFromLoop 消费者内部的停摆路径
//
// 与 Suspend 等价，但由消费者自身调用：只设置窗口和关闭标记，
// 清理由消费者自己的退出路径完成，避免自我 join。
func (w *Worker) suspendFromLoop(interval time.Duration) {
	w.mu.Lock()
	w.suspendUntil = w.clock.Now().Add(interval)
	w.shutdown = true
	w.ownerPID = 0
	w.state = StateShuttingDown
	w.mu.Unlock()
}

// ════════════════════════════════════════════════════════════════════════════
//                              状态查询
// ════════════════════════════════════════════════════════════════════════════

// State 返回当前运行状态
func (w *Worker) State() RunState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Suspended 报告停摆窗口是否仍然生效
func (w *Worker) Suspended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return !w.suspendUntil.IsZero() && w.clock.Now().Before(w.suspendUntil)
}

// QueueLen 返回队列当前长度
func (w *Worker) QueueLen() int {
	return w.queue.Len()
}
