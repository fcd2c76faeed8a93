package backend

import (
	"context"

	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

// Null 开发模式后端
//
// 不做任何网络调用，对每次投递返回模拟成功响应。
// 分类器收到模拟成功后记录"本应上报"的信息日志。
type Null struct{}

var _ interfaces.Backend = (*Null)(nil)

// NewNull 创建开发模式后端
func NewNull() *Null {
	return &Null{}
}

// Notify 返回模拟成功
func (*Null) Notify(_ context.Context, topic types.Topic, payload types.Payload) types.Response {
	logger.Debug("开发模式后端收到投递", "topic", string(topic), "id", payload.ID())
	return types.NewStubbedResponse()
}
