package worker

import "github.com/prometheus/client_golang/prometheus"

// Metrics 投递核心指标
//
// Registerer 为 nil 时指标仍然工作但不对外暴露；
// 所有方法对 nil 接收者安全，未启用指标的路径零开销。
type Metrics struct {
	delivered     prometheus.Counter
	dropped       prometheus.Counter
	failed        prometheus.Counter
	queueDepth    prometheus.Gauge
	throttleLevel prometheus.Gauge
}

// NewMetrics 创建并注册投递核心指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "honeybadger",
			Subsystem: "worker",
			Name:      "payloads_delivered_total",
			Help:      "成功投递的负载总数",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "honeybadger",
			Subsystem: "worker",
			Name:      "payloads_dropped_total",
			Help:      "因背压或强制关闭被丢弃的负载总数",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "honeybadger",
			Subsystem: "worker",
			Name:      "payloads_failed_total",
			Help:      "投递失败（传输错误或未知响应）的负载总数",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "honeybadger",
			Subsystem: "worker",
			Name:      "queue_depth",
			Help:      "投递队列当前长度",
		}),
		throttleLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "honeybadger",
			Subsystem: "worker",
			Name:      "throttle_level",
			Help:      "当前节流级别",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.delivered, m.dropped, m.failed, m.queueDepth, m.throttleLevel)
	}
	return m
}

// IncDelivered 累加成功投递计数
func (m *Metrics) IncDelivered() {
	if m == nil {
		return
	}
	m.delivered.Inc()
}

// IncDropped 累加丢弃计数
func (m *Metrics) IncDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

// AddDropped 累加丢弃计数（批量）
func (m *Metrics) AddDropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dropped.Add(float64(n))
}

// IncFailed 累加失败计数
func (m *Metrics) IncFailed() {
	if m == nil {
		return
	}
	m.failed.Inc()
}

// SetQueueDepth 更新队列长度
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

// SetThrottleLevel 更新节流级别
func (m *Metrics) SetThrottleLevel(level int) {
	if m == nil {
		return
	}
	m.throttleLevel.Set(float64(level))
}
