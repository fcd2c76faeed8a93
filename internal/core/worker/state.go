package worker

// RunState 投递核心运行状态
//
// 不变量：任意时刻至多存在一个存活的消费者 goroutine，
// 状态转换全部在投递核心的互斥锁内串行化。
type RunState int

const (
	// StateStopped 已停止（无消费者）
	StateStopped RunState = iota

	// StateStarting 启动中（消费者已派生，尚未进入循环）
	StateStarting

	// StateRunning 运行中
	StateRunning

	// StateShuttingDown 优雅关闭中（关闭令牌已入队）
	StateShuttingDown

	// StateKilled 已被强制关闭
	StateKilled
)

// String 返回状态的字符串表示
func (s RunState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateKilled:
		return "killed"
	default:
		return "unknown"
	}
}
