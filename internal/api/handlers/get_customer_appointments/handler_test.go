package get_customer_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	resp  *models.AppointmentListResponse
	err   error
	got   *models.GetCustomerAppointmentsRequest
	calls int
}

func (f *fakeService) GetCustomerAppointments(_ context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

func serve(svc *fakeService, target, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/customers/{customerId}/appointments", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 10}, {ID: 11}}}}

	rec := serve(svc, "/customers/42/appointments?status=pending", "42")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)

	require.NotNil(t, svc.got)
	assert.Equal(t, int64(42), svc.got.UserID)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
}

func TestHandle_EmptyHistoryIsEmptyArray(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}}

	rec := serve(svc, "/customers/42/appointments", "42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Nil(t, svc.got.Status)
}

func TestHandle_OtherCustomerForbidden(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/customers/42/appointments", "99")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad id", target: "/customers/abc/appointments", wantStatus: http.StatusBadRequest},
		{name: "unknown status", target: "/customers/42/appointments?status=done", err: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/customers/42/appointments", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target, "42")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
