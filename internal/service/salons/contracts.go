package salons

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	GetHours(ctx context.Context, salonID int64) (domain.WeeklyHours, error)
	ReplaceHours(ctx context.Context, salonID int64, hours domain.WeeklyHours) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
