package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	err error
	got *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{
		ID:              100,
		SalonID:         req.SalonID,
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		CustomerID:      req.CustomerID,
		StartAt:         req.StartAt,
		EndAt:           req.StartAt.Add(30 * time.Minute),
		DurationMinutes: 30,
		Status:          "pending",
		ServiceName:     "Haircut",
	}, nil
}

const validBody = `{"salonId":1,"staffId":7,"serviceId":3,"startAt":"2024-03-04T14:00:00Z"}`

func post(uc *fakeUseCase, body string, userID string) *httptest.ResponseRecorder {
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.NewNop()).Handle))

	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := post(uc, validBody, "42")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2024-03-04T14:30:00Z", resp.EndAt)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.CustomerID)
	assert.True(t, uc.got.StartAt.Equal(time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC)))
}

func TestHandle_ConflictMessage(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: overlaps [14:00, 14:30)", createAppointment.ErrSlotUnavailable)}

	rec := post(uc, validBody, "42")
	require.Equal(t, http.StatusConflict, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "This time slot is not available.", body.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		userID string
		err    error
		want   int
	}{
		{name: "no user", body: validBody, want: http.StatusUnauthorized},
		{name: "broken json", body: `{"salonId":`, userID: "42", want: http.StatusBadRequest},
		{name: "bad start", body: `{"salonId":1,"staffId":7,"serviceId":3,"startAt":"14:00"}`, userID: "42", want: http.StatusBadRequest},
		{name: "staff not found", body: validBody, userID: "42", err: createAppointment.ErrStaffNotFound, want: http.StatusNotFound},
		{name: "closed", body: validBody, userID: "42", err: createAppointment.ErrSalonClosed, want: http.StatusBadRequest},
		{name: "outside hours", body: validBody, userID: "42", err: createAppointment.ErrOutsideWorkingHours, want: http.StatusBadRequest},
		{name: "lock timeout", body: validBody, userID: "42", err: fmt.Errorf("%w: lock", createAppointment.ErrDependency), want: http.StatusServiceUnavailable},
		{name: "config fault", body: validBody, userID: "42", err: createAppointment.ErrConfiguration, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, tt.body, tt.userID)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
