package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// CatalogRepository интерфейс репозитория услуг и мастеров
type CatalogRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityChecker расчет свободных слотов
type AvailabilityChecker interface {
	Check(ctx context.Context, salonID, staffID, serviceID int64, date time.Time) (*scheduling.Result, error)
}

// Metrics счетчики проверок доступности
type Metrics interface {
	ObserveAvailabilityCheck(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
