// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速记：
// - Counter（计数器）：只增不减，如HTTP请求总数、注册总数
// - Gauge（仪表盘）：可增可减的瞬时值，如处理中的请求数
// - Histogram（直方图）：观测值分布，自动计算P50/P90/P99，如请求耗时
//
// 命名规范：
// - Counter以`_total`结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只用低基数维度（method/path/status），不要用username做标签
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/isbn/:isbn）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// UsersRegisteredTotal 注册成功总数（Counter）
	UsersRegisteredTotal prometheus.Counter

	// LoginsTotal 登录尝试总数（Counter）
	// 标签：result（success/failure）
	LoginsTotal *prometheus.CounterVec

	// ReviewsWrittenTotal 书评新增/覆盖总数（Counter）
	ReviewsWrittenTotal prometheus.Counter

	// ReviewsDeletedTotal 书评删除总数（Counter）
	ReviewsDeletedTotal prometheus.Counter

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange、routing_key
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标
// 使用promauto自动注册到默认Registry，/metrics端点由promhttp暴露
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 全部操作都是内存查表，大头在JSON编码，桶从1ms起步
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 业务指标
	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "注册成功总数",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "登录尝试总数",
		},
		[]string{"result"},
	)

	ReviewsWrittenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_written_total",
			Help: "书评新增/覆盖总数",
		},
	)

	ReviewsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_deleted_total",
			Help: "书评删除总数",
		},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)
}
