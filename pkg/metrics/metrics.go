package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conflict reasons для метрики reservation_conflicts_total
const (
	ConflictSlotFull      = "slot_full"
	ConflictAlreadyBooked = "already_booked"
	ConflictTxRetry       = "tx_retry"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	reservationsCreated   prometheus.Counter
	reservationsCancelled prometheus.Counter
	reservationConflicts  *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		reservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of successfully created reservations",
			ConstLabels: constLabels,
		}),

		reservationsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Total number of cancelled reservations",
			ConstLabels: constLabels,
		}),

		reservationConflicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Total number of booking attempts rejected by a business conflict",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated() {
	m.reservationsCreated.Inc()
}

// IncReservationCancelled увеличивает счетчик отмененных бронирований
func (m *Metrics) IncReservationCancelled() {
	m.reservationsCancelled.Inc()
}

// IncReservationConflict увеличивает счетчик конфликтов бронирования
func (m *Metrics) IncReservationConflict(reason string) {
	m.reservationConflicts.WithLabelValues(reason).Inc()
}
