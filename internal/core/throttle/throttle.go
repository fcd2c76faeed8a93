// Package throttle 实现自适应节流控制器
//
// 节流级别是连续过载信号的计数：后端返回限流/不可用时加一，
// 投递成功时减一，下限为 0。派生的间隔按指数退避计算，
// 在每次成功投递尝试之后作为睡眠施加（不延迟已在途的条目）。
package throttle

import (
	"math"
	"sync"
	"time"
)

// Multiplier 退避倍数
//
// interval = Multiplier^level − 1（秒，保留 3 位小数）。
// 约 100 次连续限流响应后，单条延迟达到约 2 分钟。
const Multiplier = 1.05

// Controller 节流控制器
//
// 级别与派生间隔在同一把锁下变更，读写都经过锁。
type Controller struct {
	mu       sync.Mutex
	level    int
	interval float64 // 秒
}

// New 创建级别为 0 的控制器
func New() *Controller {
	return &Controller{}
}

// Increment 将节流级别加一，返回新的级别和间隔（秒）
func (c *Controller) Increment() (int, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.level++
	c.interval = intervalFor(c.level)
	return c.level, c.interval
}

// Decrement 将节流级别减一
//
// 级别已经是 0 时不做任何事，第三个返回值为 false。
func (c *Controller) Decrement() (int, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.level == 0 {
		return 0, 0, false
	}
	c.level--
	c.interval = intervalFor(c.level)
	return c.level, c.interval, true
}

// Level 返回当前节流级别
func (c *Controller) Level() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.level
}

// Interval 返回当前间隔（秒）
func (c *Controller) Interval() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.interval
}

// IntervalDuration 返回当前间隔对应的 time.Duration
func (c *Controller) IntervalDuration() time.Duration {
	return time.Duration(c.Interval() * float64(time.Second))
}

// intervalFor 计算给定级别的间隔（秒，保留 3 位小数）
func intervalFor(level int) float64 {
	raw := math.Pow(Multiplier, float64(level)) - 1
	return math.Round(raw*1000) / 1000
}
