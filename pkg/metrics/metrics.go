package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса записи
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	slotSearchesTotal   *prometheus.CounterVec
	slotsFound          prometheus.Histogram
	appointmentOpsTotal *prometheus.CounterVec
	dbQueryDuration     *prometheus.HistogramVec
	dbQueryErrorsTotal  *prometheus.CounterVec
	dbPoolConnections   *prometheus.GaugeVec
}

// New создает и регистрирует метрики. reg == nil означает DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route, method and status",
			ConstLabels: constLabels,
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		slotSearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "slot_searches_total",
			Help:        "Slot searches by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		slotsFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "slots_found",
			Help:        "Number of free slots returned per search",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		appointmentOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "appointment_operations_total",
			Help:        "Appointment mutations by operation and outcome",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency by statement kind",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Failed database queries by statement kind",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbPoolConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "salon",
			Subsystem:   "db",
			Name:        "pool_connections",
			Help:        "Connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.slotSearchesTotal,
		m.slotsFound,
		m.appointmentOpsTotal,
		m.dbQueryDuration,
		m.dbQueryErrorsTotal,
		m.dbPoolConnections,
	)
	return m
}

// ObserveHTTPRequest учитывает один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// ObserveSlotSearch учитывает поиск свободного времени
func (m *Metrics) ObserveSlotSearch(outcome string, slots int) {
	if m == nil {
		return
	}
	m.slotSearchesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.slotsFound.Observe(float64(slots))
	}
}

// ObserveAppointmentOperation учитывает create/update/delete записи
func (m *Metrics) ObserveAppointmentOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.appointmentOpsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveDBQuery учитывает один запрос к базе данных
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.dbQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbPoolConnections.WithLabelValues("open").Set(float64(open))
	m.dbPoolConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbPoolConnections.WithLabelValues("idle").Set(float64(idle))
}

// Outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Operation labels
const (
	OperationCreate       = "create"
	OperationUpdate       = "update"
	OperationDelete       = "delete"
	OperationUpdateStatus = "update_status"
)
