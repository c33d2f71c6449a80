package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// HoursSource источник расписания работы салона
type HoursSource interface {
	GetHours(ctx context.Context, salonID int64) (domain.WeeklyHours, error)
}

// DurationSource источник длительности услуги
type DurationSource interface {
	GetServiceDuration(ctx context.Context, serviceID int64) (time.Duration, error)
}

// AppointmentFinder возвращает записи мастера, пересекающие [from, to), в указанных статусах
type AppointmentFinder interface {
	FindByStaffInRange(ctx context.Context, staffID int64, from, to time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
