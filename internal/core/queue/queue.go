// Package queue 实现投递队列
//
// 队列是跨所有生产者的严格 FIFO，条目是一个封闭变体：
// 负载、关闭令牌或冲刷标记。存储无上限，软上限由投递核心
// 在入队前检查（超限丢弃，不阻塞生产者）。
//
// 出队采用监视器模式（互斥锁 + 条件变量）：Pop 在队列为空时
// 释放锁并等待，入队后被唤醒。
package queue

import (
	"sync"

	"github.com/pcreux/honeybadger-go/pkg/types"
)

// ============================================================================
//                              条目变体
// ============================================================================

// Entry 队列条目
//
// 封闭变体：只有本包内的类型实现该接口，
// 消费者据此做穷尽的类型切换。
type Entry interface {
	isEntry()
}

// Item 负载条目
type Item struct {
	// Payload 待投递的负载（入队后不可变）
	Payload types.Payload
}

func (Item) isEntry() {}

// ShutdownToken 关闭令牌
//
// 哨兵条目：消费者弹出后排空在它之前入队的全部工作并退出。
type ShutdownToken struct{}

func (ShutdownToken) isEntry() {}

// ============================================================================
//                              队列
// ============================================================================

// Queue 投递队列
type Queue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond

	entries []Entry
}

// New 创建空队列
func New() *Queue {
	q := &Queue{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Push 入队一个条目并唤醒等待的消费者
func (q *Queue) Push(e Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, e)
	q.nonEmpty.Signal()
}

// Pop 出队最早的条目，队列为空时阻塞
func (q *Queue) Pop() Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.entries) == 0 {
		q.nonEmpty.Wait()
	}

	e := q.entries[0]
	q.entries[0] = nil // 帮助 GC
	q.entries = q.entries[1:]
	return e
}

// Len 返回当前队列长度
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// Clear 清空队列，返回被丢弃的负载数
//
// 被移除的冲刷标记会被立即唤醒，避免冲刷调用方无限等待。
// 关闭令牌一并丢弃。
func (q *Queue) Clear() int {
	q.mu.Lock()
	removed := q.entries
	q.entries = nil
	q.mu.Unlock()

	dropped := 0
	for _, e := range removed {
		switch v := e.(type) {
		case Item:
			dropped++
		case *FlushMarker:
			v.Signal()
		}
	}
	return dropped
}
