// Package honeybadger 提供进程内异步投递管线
//
// 调用方通过 Agent 入队错误通知，无需在网络 I/O 上阻塞；
// 单个后台消费者排空队列、调用后端，并根据后端响应做自适应
// 节流退避。支持优雅/强制关闭、账户级停摆窗口和冲刷同步。
//
// 基本用法：
//
//	agent, err := honeybadger.New(
//	    honeybadger.WithAPIKey("project-api-key"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer agent.Close()
//
//	agent.Notify(errors.New("something broke"))
//	agent.Flush() // 等待此前的通知全部送达
//
// 架构层次：
//   - API Layer: Agent（本包，用户直接交互）
//   - Core Layer: Worker, Queue, Throttle（internal/core/）
//   - Transport Layer: Backend（internal/core/backend/）
//
// 投递失败永远不会以 panic 或 error 的形式传回生产者：
// 最坏的结果是负载被丢弃或延迟，生产者永不被阻塞。
package honeybadger
