// Package interfaces 定义 honeybadger 公共接口
//
// 本文件定义 Backend 接口，对应 internal/core/backend/ 实现。
package interfaces

import (
	"context"

	"github.com/pcreux/honeybadger-go/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
// Backend 接口
// ════════════════════════════════════════════════════════════════════════════

// Backend 定义后端传输接口
//
// Backend 负责把负载真正送达远端（或在开发模式下模拟送达）。
// 投递核心不关心线上格式，只消费 Notify 返回的 Response 分类。
//
// 约定：
//   - Notify 不返回 error。传输失败必须编码为
//     types.ResponseError 分类的 Response，由分类器统一处理。
//   - Notify 可能被单个消费者 goroutine 长期串行调用，
//     实现方无需自行做并发控制。
//
// 架构位置：Transport Layer
// 实现位置：internal/core/backend/
type Backend interface {
	// Notify 投递一个负载，返回投递结果
	Notify(ctx context.Context, topic types.Topic, payload types.Payload) types.Response
}
