package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты операций над комнатами
const (
	ResultOK = "ok"
)

var (
	// HTTP метрики - количество запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Общее количество HTTP запросов",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - время обработки запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Время обработки HTTP запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - количество ошибок
	httpErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Общее количество HTTP ошибок",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Операции реестра и журнала занятости по результату (ok или вид ошибки)
	roomOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_operations_total",
			Help: "Количество операций над комнатами по результату",
		},
		[]string{"operation", "result"},
	)
)

// RecordHTTPMetrics записывает метрики HTTP запроса
func RecordHTTPMetrics(method, endpoint string, status int, duration time.Duration) {
	strStatus := strconv.Itoa(status)

	httpRequestsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, strStatus).Observe(duration.Seconds())

	if status >= 400 {
		httpErrorsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	}
}

// RecordRoomOperation считает create/update/occupy/free по результату
func RecordRoomOperation(operation, result string) {
	roomOperationsTotal.WithLabelValues(operation, result).Inc()
}
