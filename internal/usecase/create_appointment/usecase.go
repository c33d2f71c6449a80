package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/salon"
	customerClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/customerservice"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

// DefaultLockWait сколько ждем блокировку мастера
const DefaultLockWait = 5 * time.Second

const (
	outcomeCreated  = "created"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	catalogRepo     CatalogRepository
	guard           ConflictGuard
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	locker          Locker
	policy          domain.BookingPolicy
	lockWait        time.Duration
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	catalogRepo CatalogRepository,
	guard ConflictGuard,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	locker Locker,
	policy domain.BookingPolicy,
	lockWait time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		catalogRepo:     catalogRepo,
		guard:           guard,
		customerClient:  customerClient,
		txManager:       txManager,
		locker:          locker,
		policy:          policy,
		lockWait:        lockWait,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликтов и вставка идут под блокировкой мастера в сериализуемой транзакции,
// ограничение исключения в БД остается последней защитой от двойной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.ObserveBookingAttempt(outcomeOf(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, salon=%d, staff=%d, service=%d, start=%s",
		req.CustomerID, req.SalonID, req.StaffID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	startAt := req.StartAt.In(uc.policy.Loc())

	// 2. Проверяем салон, мастера и услугу
	service, err := uc.loadReferences(ctx, req)
	if err != nil {
		return nil, err
	}
	duration := service.Duration()

	// 3. Время в будущем, в пределах горизонта и с учетом minBookingNoticeMinutes
	if err := validateStartTime(startAt, now, uc.policy); err != nil {
		uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 4. Профиль клиента для денормализации, при недоступности записываем без него
	var customerName, customerPhone *string
	customer, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	switch {
	case err == nil:
		customerName = &customer.Name
		customerPhone = customer.Phone
	case errors.Is(err, customerClient.ErrCustomerNotFound):
		uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	case errors.Is(err, customerClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: creating appointment without customer profile: %v", err)
	default:
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 5. Сериализуем запись на одного мастера
	release, err := uc.lockStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(); err != nil {
			uc.logger.Warn("CreateAppointment: failed to release lock for staff=%d: %v", req.StaffID, err)
		}
	}()

	var result *domain.Appointment

	// 6. Проверка и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Время должно целиком попадать в рабочие часы
		if err := uc.checkWorkingHours(txCtx, req.SalonID, startAt, duration); err != nil {
			return err
		}

		// 6.2. Перечитываем занятость мастера
		if err := uc.guard.Check(txCtx, req.StaffID, startAt, duration); err != nil {
			switch {
			case errors.Is(err, scheduling.ErrSlotUnavailable):
				uc.logger.Warn("CreateAppointment: slot %s for staff=%d is taken", startAt.Format(time.RFC3339), req.StaffID)
				return ErrSlotUnavailable
			case errors.Is(err, scheduling.ErrDependency):
				uc.logger.Error("CreateAppointment: failed to collect busy intervals: %v", err)
				return fmt.Errorf("%w: %w", ErrDependency, err)
			default:
				uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
				return fmt.Errorf("%w: conflict check: %w", ErrInternal, err)
			}
		}

		// 6.3. Создаем запись с денормализацией данных
		appointment := &domain.Appointment{
			SalonID:         req.SalonID,
			StaffID:         req.StaffID,
			ServiceID:       req.ServiceID,
			CustomerID:      req.CustomerID,
			StartAt:         startAt,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.PriceOrZero(),
			CustomerName:    customerName,
			CustomerPhone:   customerPhone,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: exclusion constraint rejected staff=%d at %s", req.StaffID, startAt.Format(time.RFC3339))
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		SalonID:         result.SalonID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		CustomerID:      result.CustomerID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) loadReferences(ctx context.Context, req *Request) (*domain.Service, error) {
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrDependency, err)
	}
	if !salon.IsActive {
		uc.logger.Warn("CreateAppointment: salon id=%d is not active", req.SalonID)
		return nil, ErrSalonNotFound
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrDependency, err)
	}
	if err := validateStaff(staff, req.SalonID); err != nil {
		uc.logger.Warn("CreateAppointment: staff id=%d does not work in salon id=%d", req.StaffID, req.SalonID)
		return nil, err
	}

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrDependency, err)
	}
	if err := validateService(service, req.SalonID); err != nil {
		if errors.Is(err, ErrConfiguration) {
			uc.logger.Error("CreateAppointment: %v", err)
		} else {
			uc.logger.Warn("CreateAppointment: service id=%d is not offered by salon id=%d", req.ServiceID, req.SalonID)
		}
		return nil, err
	}

	return service, nil
}

func (uc *UseCase) lockStaff(ctx context.Context, staffID int64) (func() error, error) {
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	started := time.Now()
	release, err := uc.locker.Lock(lockCtx, fmt.Sprintf("staff:%d", staffID))
	uc.metrics.ObserveStaffLockWait(time.Since(started))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to lock staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: lock staff=%d: %v", ErrDependency, staffID, err)
	}

	return release, nil
}

func (uc *UseCase) checkWorkingHours(ctx context.Context, salonID int64, startAt time.Time, duration time.Duration) error {
	hours, err := uc.salonRepo.GetHours(ctx, salonID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get hours of salon=%d: %v", salonID, err)
		return fmt.Errorf("%w: failed to get hours: %w", ErrDependency, err)
	}

	window, err := scheduling.ResolveOperatingHours(hours, startAt)
	if err != nil {
		uc.logger.Error("CreateAppointment: broken operating hours of salon=%d: %v", salonID, err)
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if window.Closed {
		uc.logger.Warn("CreateAppointment: salon=%d is closed on %s", salonID, startAt.Format(domain.DateFormat))
		return ErrSalonClosed
	}
	if !window.Contains(startAt, startAt.Add(duration)) {
		uc.logger.Warn("CreateAppointment: [%s, +%s) is outside %s-%s",
			startAt.Format(domain.TimeFormat), duration, window.Open.Format(domain.TimeFormat), window.Close.Format(domain.TimeFormat))
		return ErrOutsideWorkingHours
	}

	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, ErrSlotUnavailable):
		return outcomeConflict
	case errors.Is(err, ErrDependency), errors.Is(err, ErrConfiguration), errors.Is(err, ErrInternal):
		return outcomeError
	default:
		return outcomeRejected
	}
}
