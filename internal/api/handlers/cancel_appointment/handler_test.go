package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
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
	err   error
	gotID int64
	got   *models.CancelAppointmentRequest
}

func (f *fakeService) Cancel(_ context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	f.gotID, f.got = appointmentID, req
	return f.err
}

func patch(svc *fakeService, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/appointments/{appointmentId}/cancel", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPatch, target, reader)
	req.Header.Set(middleware.UserIDHeader, "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := &fakeService{}

	rec := patch(svc, "/appointments/10/cancel", `{"cancellationReason":"changed plans"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), svc.gotID)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, "changed plans", svc.got.CancellationReason)
}

func TestHandle_WithoutBody(t *testing.T) {
	svc := &fakeService{}

	rec := patch(svc, "/appointments/10/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Empty(t, svc.got.CancellationReason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad id", target: "/appointments/0/cancel", wantStatus: http.StatusBadRequest},
		{name: "broken body", target: "/appointments/10/cancel", body: `{"cancellationReason":`, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/appointments/10/cancel", err: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "stranger", target: "/appointments/10/cancel", err: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already completed", target: "/appointments/10/cancel",
			err: fmt.Errorf("%w: status completed", appointments.ErrCannotCancel), wantStatus: http.StatusBadRequest},
		{name: "reason too long", target: "/appointments/10/cancel", err: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/appointments/10/cancel", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := patch(&fakeService{err: tt.err}, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_CannotCancelMessage(t *testing.T) {
	rec := patch(&fakeService{err: appointments.ErrCannotCancel}, "/appointments/10/cancel", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCannotCancel)
}
