package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_EndAt(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	a := &Appointment{StartAt: start, DurationMinutes: 45}

	assert.Equal(t, start.Add(45*time.Minute), a.EndAt())
}

func TestAppointment_OccupiesCalendar(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.want, a.OccupiesCalendar())
		})
	}
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is final", StatusCompleted, StatusConfirmed, false},
		{"cancelled is final", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestWeeklyHours_For(t *testing.T) {
	hours := WeeklyHours{
		time.Monday: {IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	h, ok := hours.For(monday)
	assert.True(t, ok)
	assert.Equal(t, "09:00", h.OpenTime)

	_, ok = hours.For(monday.AddDate(0, 0, 1))
	assert.False(t, ok)
}
