package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("salon-test", reg)

	m.ObserveHTTPRequest("/api/v1/appointments", "POST", 201, 0.05)
	m.ObserveSlotSearch(OutcomeSuccess, 81)
	m.ObserveSlotSearch(OutcomeInvalid, 0)
	m.ObserveAppointmentOperation(OperationCreate, OutcomeSuccess)
	m.ObserveAppointmentOperation(OperationCreate, OutcomeConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotSearchesTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointmentOpsTotal.WithLabelValues(OperationCreate, OutcomeConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/api/v1/appointments", "POST", "201")))
}

func TestMetrics_DB(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("salon-test", reg)

	m.ObserveDBQuery("select", 0.002, nil)
	m.ObserveDBQuery("insert", 0.004, errors.New("boom"))
	m.SetDBPoolStats(5, 2, 3)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.dbQueryErrorsTotal.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrorsTotal.WithLabelValues("insert")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbPoolConnections.WithLabelValues("in_use")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest("/", "GET", 200, 0.1)
	m.ObserveSlotSearch(OutcomeSuccess, 1)
	m.ObserveAppointmentOperation(OperationDelete, OutcomeNotFound)
	m.ObserveDBQuery("select", 0.1, nil)
	m.SetDBPoolStats(1, 1, 0)
}
