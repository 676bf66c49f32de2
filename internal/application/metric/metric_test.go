package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoomOperation(t *testing.T) {
	before := testutil.ToFloat64(roomOperationsTotal.WithLabelValues("occupy", "room_occupied"))

	RecordRoomOperation("occupy", "room_occupied")
	RecordRoomOperation("occupy", "room_occupied")

	after := testutil.ToFloat64(roomOperationsTotal.WithLabelValues("occupy", "room_occupied"))
	assert.Equal(t, before+2, after)
}

func TestRecordHTTPMetrics_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(httpErrorsTotal.WithLabelValues("POST", "/rooms/occupy", "400"))

	RecordHTTPMetrics("POST", "/rooms/occupy", http.StatusBadRequest, 3*time.Millisecond)
	RecordHTTPMetrics("POST", "/rooms/occupy", http.StatusCreated, 3*time.Millisecond)

	after := testutil.ToFloat64(httpErrorsTotal.WithLabelValues("POST", "/rooms/occupy", "400"))
	assert.Equal(t, before+1, after)
}

func TestServer_Health(t *testing.T) {
	srv := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	RecordRoomOperation("free", ResultOK)

	srv := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "room_operations_total")
}
