package backend

import (
	"context"
	"sync"

	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

// Memory 测试后端
//
// 记录每次投递，并按预先编排的脚本依次返回响应；
// 脚本耗尽后一律返回 201。供测试观察投递顺序和计数。
type Memory struct {
	mu       sync.Mutex
	notified []Notification
	scripted []types.Response
}

// Notification 一次投递记录
type Notification struct {
	Topic   types.Topic
	Payload types.Payload
}

var _ interfaces.Backend = (*Memory)(nil)

// NewMemory 创建测试后端
func NewMemory() *Memory {
	return &Memory{}
}

// Script 追加按序返回的响应脚本
func (m *Memory) Script(responses ...types.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scripted = append(m.scripted, responses...)
}

// Notify 记录投递并返回下一个脚本响应
func (m *Memory) Notify(_ context.Context, topic types.Topic, payload types.Payload) types.Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notified = append(m.notified, Notification{Topic: topic, Payload: payload})

	if len(m.scripted) > 0 {
		r := m.scripted[0]
		m.scripted = m.scripted[1:]
		return r
	}
	return types.NewHTTPResponse(201, "created")
}

// Count 返回已投递次数
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.notified)
}

// PayloadIDs 按投递顺序返回负载标识
func (m *Memory) PayloadIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.notified))
	for _, n := range m.notified {
		ids = append(ids, n.Payload.ID())
	}
	return ids
}
