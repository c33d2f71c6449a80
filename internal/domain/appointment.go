package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked service for one staff member
type Appointment struct {
	ID              int64
	SalonID         int64
	StaffID         int64
	ServiceID       int64
	CustomerID      int64
	StartAt         time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName   string
	ServicePrice  float64
	CustomerName  *string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the service duration of the appointment
func (a *Appointment) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}

// EndAt returns the exclusive end of the appointment
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(a.Duration())
}

// OccupiesCalendar returns true if the appointment blocks the staff member's time
func (a *Appointment) OccupiesCalendar() bool {
	return a.Status.OccupiesCalendar()
}

// OccupiesCalendar returns true for statuses that block the staff member's time
func (s AppointmentStatus) OccupiesCalendar() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo returns true if the salon may move the appointment to the given status.
// Cancellation goes through CanBeCancelled.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID         int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по мастеру (опционально)
	StartDate       *time.Time         // Начало периода включительно (опционально)
	EndDate         *time.Time         // Конец периода включительно (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и no-show
}
