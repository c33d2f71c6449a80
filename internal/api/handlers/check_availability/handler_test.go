package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error
	got  *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/salons/{salonId}/staff/{staffId}/availability", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	nine := date.Add(9 * time.Hour)
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		Date:            date,
		SalonID:         1,
		StaffID:         7,
		ServiceID:       3,
		Available:       true,
		ServiceDuration: 30 * time.Minute,
		Slots: []checkAvailability.Slot{
			{Start: nine, End: nine.Add(30 * time.Minute)},
			{Start: nine.Add(4 * time.Hour), End: nine.Add(4*time.Hour + 30*time.Minute)},
		},
	}}

	rec := serve(uc, "/salons/1/staff/7/availability?serviceId=3&date=2024-03-04")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["available"])
	assert.Equal(t, float64(30), body["serviceDuration"])

	slots := body["timeSlots"].([]interface{})
	require.Len(t, slots, 2)
	assert.Equal(t, map[string]interface{}{"time": "2024-03-04T09:00:00Z", "formattedTime": "9:00 AM"}, slots[0])
	assert.Equal(t, "1:00 PM", slots[1].(map[string]interface{})["formattedTime"])

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.StaffID)
	assert.Equal(t, date, uc.got.Date)
}

func TestHandle_ClosedDayReturnsEmptyList(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		Date:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Reason: "closed",
	}}

	rec := serve(uc, "/salons/1/staff/7/availability?serviceId=3&date=2024-03-03")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, mustField(t, rec, "timeSlots"))
	assert.JSONEq(t, `false`, mustField(t, rec, "available"))
	assert.JSONEq(t, `"closed"`, mustField(t, rec, "reason"))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "bad salon id", target: "/salons/x/staff/7/availability?serviceId=3&date=2024-03-04", want: http.StatusBadRequest},
		{name: "missing service", target: "/salons/1/staff/7/availability?date=2024-03-04", want: http.StatusBadRequest},
		{name: "missing date", target: "/salons/1/staff/7/availability?serviceId=3", want: http.StatusBadRequest},
		{name: "bad date", target: "/salons/1/staff/7/availability?serviceId=3&date=04.03.2024", want: http.StatusBadRequest},
		{name: "staff not found", err: checkAvailability.ErrStaffNotFound, want: http.StatusNotFound},
		{name: "date in past", err: checkAvailability.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "store down", err: fmt.Errorf("%w: timeout", checkAvailability.ErrDependency), want: http.StatusServiceUnavailable},
		{name: "broken hours", err: fmt.Errorf("%w: open after close", checkAvailability.ErrConfiguration), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.target
			if target == "" {
				target = "/salons/1/staff/7/availability?serviceId=3&date=2024-03-04"
			}

			rec := serve(&fakeUseCase{err: tt.err}, target)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusServiceUnavailable {
				assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			}
		})
	}
}

func mustField(t *testing.T, rec *httptest.ResponseRecorder, name string) string {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	raw, ok := body[name]
	require.True(t, ok, "field %s missing", name)
	return string(raw)
}
