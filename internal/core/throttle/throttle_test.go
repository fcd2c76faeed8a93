package throttle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestController_Increment 测试节流级别提升与间隔计算
func TestController_Increment(t *testing.T) {
	c := New()

	level, interval := c.Increment()
	assert.Equal(t, 1, level)
	assert.InDelta(t, 0.05, interval, 1e-9)

	level, interval = c.Increment()
	assert.Equal(t, 2, level)
	assert.InDelta(t, 0.103, interval, 1e-9)

	// 连续三次限流后，单条延迟为 round(1.05³−1, 3) = 0.158 秒
	level, interval = c.Increment()
	assert.Equal(t, 3, level)
	assert.InDelta(t, 0.158, interval, 1e-9)

	t.Log("✅ Controller.Increment 测试通过")
}

// TestController_Decrement 测试节流级别恢复
func TestController_Decrement(t *testing.T) {
	c := New()

	c.Increment()
	c.Increment()
	c.Increment()
	require.Equal(t, 3, c.Level())

	// 一次成功投递把级别降回 2，间隔 round(1.05²−1, 3)
	level, interval, ok := c.Decrement()
	require.True(t, ok)
	assert.Equal(t, 2, level)
	assert.InDelta(t, 0.103, interval, 1e-9)

	t.Log("✅ Controller.Decrement 测试通过")
}

// TestController_DecrementAtZero 测试级别为 0 时的减操作
func TestController_DecrementAtZero(t *testing.T) {
	c := New()

	// 级别已是 0：无事发生
	level, interval, ok := c.Decrement()
	assert.False(t, ok)
	assert.Equal(t, 0, level)
	assert.Zero(t, interval)
	assert.Equal(t, 0, c.Level())

	t.Log("✅ 级别下限饱和测试通过")
}

// TestController_LongOutage 测试长时间限流的退避规模
func TestController_LongOutage(t *testing.T) {
	c := New()

	// 约 100 次连续限流后达到约 2 分钟的单条延迟
	var interval float64
	for i := 0; i < 100; i++ {
		_, interval = c.Increment()
	}
	assert.Greater(t, interval, 120.0)
	assert.Less(t, interval, 140.0)

	t.Log("✅ 指数退避规模测试通过")
}

// TestController_Concurrent 测试并发增减
func TestController_Concurrent(t *testing.T) {
	c := New()

	numGoroutines := 50
	numOps := 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				c.Increment()
			}
		}()
	}
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				c.Decrement()
			}
		}()
	}

	wg.Wait()

	// 增减次数相同，但减操作在 0 处饱和，级别不可能为负
	assert.GreaterOrEqual(t, c.Level(), 0)
	assert.GreaterOrEqual(t, c.Interval(), 0.0)

	t.Log("✅ 并发增减测试通过")
}
