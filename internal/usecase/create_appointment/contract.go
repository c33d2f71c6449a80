package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/customerservice"
	"github.com/m04kA/SMC-SalonBooking/pkg/locker"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	GetHours(ctx context.Context, salonID int64) (domain.WeeklyHours, error)
}

// CatalogRepository интерфейс репозитория услуг и мастеров
type CatalogRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// ConflictGuard проверка пересечения с существующими записями мастера
type ConflictGuard interface {
	Check(ctx context.Context, staffID int64, start time.Time, duration time.Duration) error
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключу (локальная или распределенная)
type Locker interface {
	Lock(ctx context.Context, key string) (locker.Release, error)
}

// Metrics метрики попыток записи
type Metrics interface {
	ObserveBookingAttempt(outcome string)
	ObserveStaffLockWait(elapsed time.Duration)
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
