package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/rent", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/rent", "GET", 200, 7*time.Millisecond)
	m.RecordError("/bookings", "POST", "ACTION_IN_FLIGHT")

	requests, errors := m.Snapshot()
	assert.Equal(t, int64(2), requests["/rent|GET|200"])
	assert.Equal(t, int64(1), errors["/bookings|POST|ACTION_IN_FLIGHT"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/rent", "GET", 200, time.Millisecond)
	m.RecordError("/rent", "GET", "X")

	requests, errors := m.Snapshot()
	assert.Nil(t, requests)
	assert.Nil(t, errors)
}
