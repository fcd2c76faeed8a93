package honeybadger

import "sync"

// 全局默认 Agent
//
// 便捷入口：小型程序可以不自建 Agent，直接用包级函数。
// 未 Configure 时，包级 Notify/Flush 是安全的空操作。
var (
	defaultMu    sync.Mutex
	defaultAgent *Agent
)

// Configure 创建并安装全局默认 Agent
//
// 重复调用会先关闭旧的默认 Agent。
func Configure(opts ...Option) error {
	agent, err := New(opts...)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultAgent
	defaultAgent = agent
	defaultMu.Unlock()

	if old != nil {
		return old.Close()
	}
	return nil
}

// Default 返回全局默认 Agent（可能为 nil）
func Default() *Agent {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return defaultAgent
}

// Notify 通过全局默认 Agent 上报一个 error
func Notify(err error) bool {
	if a := Default(); a != nil {
		return a.Notify(err)
	}
	return false
}

// Flush 等待全局默认 Agent 排空此前入队的负载
func Flush() {
	if a := Default(); a != nil {
		a.Flush()
	}
}

// Stop 优雅关闭全局默认 Agent
func Stop() error {
	defaultMu.Lock()
	agent := defaultAgent
	defaultAgent = nil
	defaultMu.Unlock()

	if agent == nil {
		return nil
	}
	return agent.Close()
}
