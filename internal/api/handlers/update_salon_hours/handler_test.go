package update_salon_hours

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	err        error
	gotSalonID int64
	got        *models.UpdateHoursRequest
}

func (f *fakeService) UpdateHours(_ context.Context, salonID int64, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	f.gotSalonID, f.got = salonID, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.HoursResponse{SalonID: salonID, Hours: req.Hours}, nil
}

const mondayBody = `{"hours":{"monday":{"isOpen":true,"openTime":"09:00","closeTime":"18:00"}}}`

func put(svc *fakeService, target, body, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/salons/{salonId}/hours", middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := put(svc, "/salons/1/hours", mondayBody, "500")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.gotSalonID)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(500), svc.got.UserID)
	assert.Equal(t, "18:00", svc.got.Hours["monday"].CloseTime)
	assert.Contains(t, rec.Body.String(), `"salonId":1`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		userID     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "bad id", target: "/salons/0/hours", body: mondayBody, userID: "500", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidSalonID},
		{name: "no user", target: "/salons/1/hours", body: mondayBody, wantStatus: http.StatusUnauthorized},
		{name: "broken body", target: "/salons/1/hours", body: `{"hours":`, userID: "500", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{name: "not found", target: "/salons/2/hours", body: mondayBody, userID: "500",
			err: salons.ErrSalonNotFound, wantStatus: http.StatusNotFound, wantMsg: msgSalonNotFound},
		{name: "not owner", target: "/salons/1/hours", body: mondayBody, userID: "42",
			err: salons.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMsg: msgForbidden},
		{name: "invalid hours", target: "/salons/1/hours", body: `{"hours":{"monday":{"isOpen":true,"openTime":"+9:00","closeTime":"18:00"}}}`, userID: "500",
			err: fmt.Errorf("%w: monday", salons.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantMsg: msgInvalidHours},
		{name: "internal", target: "/salons/1/hours", body: mondayBody, userID: "500",
			err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.err}, tt.target, tt.body, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}
