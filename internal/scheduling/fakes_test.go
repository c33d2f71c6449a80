package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type fakeHours struct {
	hours domain.WeeklyHours
	err   error
}

func (f *fakeHours) GetHours(_ context.Context, _ int64) (domain.WeeklyHours, error) {
	return f.hours, f.err
}

type fakeDurations struct {
	duration time.Duration
	err      error
}

func (f *fakeDurations) GetServiceDuration(_ context.Context, _ int64) (time.Duration, error) {
	return f.duration, f.err
}

// fakeFinder хранилище записей в памяти, фильтрует как настоящий репозиторий
type fakeFinder struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	err          error
	calls        int
}

func (f *fakeFinder) FindByStaffInRange(_ context.Context, staffID int64, from, to time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.StaffID != staffID || !a.StartAt.Before(to) || !a.EndAt().After(from) {
			continue
		}
		for _, s := range statuses {
			if a.Status == s {
				result = append(result, a)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeFinder) add(a *domain.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments = append(f.appointments, a)
}

// 4 марта 2024 года понедельник
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func appointmentAt(staffID int64, hour, minute, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		StaffID:         staffID,
		StartAt:         at(hour, minute),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func mondayHours(open, close string) domain.WeeklyHours {
	return domain.WeeklyHours{
		time.Monday:  {IsOpen: true, OpenTime: open, CloseTime: close},
		time.Sunday:  {IsOpen: false},
		time.Tuesday: {IsOpen: true, OpenTime: "10:00", CloseTime: "16:00"},
	}
}

func slotStarts(slots []Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start.Format(domain.TimeFormat))
	}
	return starts
}
