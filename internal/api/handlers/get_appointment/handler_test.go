package get_appointment

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
	resp      *models.AppointmentResponse
	err       error
	gotID     int64
	gotUserID int64
}

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	f.gotID, f.gotUserID = id, userID
	return f.resp, f.err
}

func serve(svc *fakeService, target, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/appointments/{appointmentId}", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentResponse{ID: 10, Status: "pending"}}

	rec := serve(svc, "/appointments/10", "42")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, int64(10), svc.gotID)
	assert.Equal(t, int64(42), svc.gotUserID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		userID     string
		err        error
		wantStatus int
	}{
		{name: "bad id", target: "/appointments/abc", userID: "42", wantStatus: http.StatusBadRequest},
		{name: "no user", target: "/appointments/10", wantStatus: http.StatusUnauthorized},
		{name: "not found", target: "/appointments/10", userID: "42", err: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "stranger", target: "/appointments/10", userID: "99", err: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", target: "/appointments/10", userID: "42", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
