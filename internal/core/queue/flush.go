package queue

import (
	"sync"

	"github.com/google/uuid"
)

// FlushMarker 冲刷标记
//
// 每次冲刷调用创建一个新标记并注入队列。由于队列是严格 FIFO，
// 消费者弹出标记时，所有先于冲刷入队的负载都已被处理。
// 消费者（或异常退出时的清理路径）通过 Signal 唤醒等待方。
type FlushMarker struct {
	id   string
	once sync.Once
	done chan struct{}
}

func (*FlushMarker) isEntry() {}

// NewFlushMarker 创建一次性冲刷标记
func NewFlushMarker() *FlushMarker {
	return &FlushMarker{
		id:   uuid.New().String(),
		done: make(chan struct{}),
	}
}

// ID 返回标记的唯一标识（用于日志关联）
func (m *FlushMarker) ID() string {
	return m.id
}

// Signal 唤醒所有等待该标记的调用方，幂等
func (m *FlushMarker) Signal() {
	m.once.Do(func() {
		close(m.done)
	})
}

// Done 返回等待通道，标记被 Signal 后关闭
func (m *FlushMarker) Done() <-chan struct{} {
	return m.done
}
