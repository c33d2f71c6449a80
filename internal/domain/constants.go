package domain

import "time"

// SlotGranularity шаг сетки слотов. Используется и генератором слотов,
// и при обходе занятого времени, значения должны совпадать.
const SlotGranularity = 30 * time.Minute

// Default configuration values
const (
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxAdvanceBookingDays       = 365
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayTimeFormat = "3:04 PM"
)

// OccupyingStatuses статусы записей, которые занимают время мастера
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы записей, которые не показываются по умолчанию
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
