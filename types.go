package honeybadger

import (
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Payload 可入队的通知负载
type Payload = types.Payload

// Notice 标准错误通知负载
type Notice = types.Notice

// Response 后端响应
type Response = types.Response

// Backend 后端传输接口
//
// 实现自定义传输（测试桩、备用上报通道）时实现该接口，
// 并通过 WithBackend 注入。
type Backend = interfaces.Backend

// ════════════════════════════════════════════════════════════════════════════
//                              便捷构造
// ════════════════════════════════════════════════════════════════════════════

// NewNotice 创建错误通知
func NewNotice(errorClass, errorMessage string) *Notice {
	return types.NewNotice(errorClass, errorMessage)
}

// NewNoticeFromError 从 error 创建错误通知
func NewNoticeFromError(err error) *Notice {
	return types.NewNoticeFromError(err)
}
