// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ubvoting/election/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 数据库查询计数
	DBQueriesTotal prometheus.Counter
	// 数据库查询耗时
	DBQueryDuration prometheus.Histogram

	// 业务指标
	ApplicationsSubmittedTotal prometheus.Counter
	ApplicationsReviewedTotal  prometheus.Counter
	NotificationsCreatedTotal  prometheus.Counter
	EmailsSentTotal            prometheus.Counter
	EmailsFailedTotal          prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		DBQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "db_queries_total",
			Help:      "Total database queries",
		}),
		DBQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		ApplicationsSubmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "applications_submitted_total",
			Help:      "Total candidate applications submitted",
		}),
		ApplicationsReviewedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "applications_reviewed_total",
			Help:      "Total candidate applications reviewed",
		}),
		NotificationsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "notifications_created_total",
			Help:      "Total in-app notifications created",
		}),
		EmailsSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "emails_sent_total",
			Help:      "Total lifecycle emails sent",
		}),
		EmailsFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Subsystem: serviceName,
			Name:      "emails_failed_total",
			Help:      "Total lifecycle emails that failed to send",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	metrics := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.ApplicationsSubmittedTotal,
		m.ApplicationsReviewedTotal,
		m.NotificationsCreatedTotal,
		m.EmailsSentTotal,
		m.EmailsFailedTotal,
	}

	for _, metric := range metrics {
		if err := prometheus.DefaultRegisterer.Register(metric); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}
