package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

const (
	outcomeAvailable   = "available"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

// UseCase use case для получения свободных слотов мастера
type UseCase struct {
	salonRepo    SalonRepository
	catalogRepo  CatalogRepository
	checker      AvailabilityChecker
	policy       domain.BookingPolicy
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	catalogRepo CatalogRepository,
	checker AvailabilityChecker,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:    salonRepo,
		catalogRepo:  catalogRepo,
		checker:      checker,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	switch {
	case err != nil:
		uc.metrics.ObserveAvailabilityCheck(outcomeError)
	case resp.Available:
		uc.metrics.ObserveAvailabilityCheck(outcomeAvailable)
	default:
		uc.metrics.ObserveAvailabilityCheck(outcomeUnavailable)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: salon=%d, staff=%d, service=%d, date=%s",
		req.SalonID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := uc.policy.CalendarDate(req.Date)

	// 2. Проверяем салон, мастера и услугу
	if err := uc.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	// 3. Дата не в прошлом и в пределах горизонта записи
	if err := validateDate(date, now, uc.policy); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Считаем свободные слоты
	result, err := uc.checker.Check(ctx, req.SalonID, req.StaffID, req.ServiceID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConfiguration):
			uc.logger.Error("CheckAvailability: broken configuration for salon=%d, service=%d: %v", req.SalonID, req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		case errors.Is(err, scheduling.ErrDependency):
			uc.logger.Error("CheckAvailability: dependency failure: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrDependency, err)
		default:
			uc.logger.Error("CheckAvailability: failed to check availability: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 5. Сегодня убираем слоты, до которых осталось меньше minBookingNoticeMinutes
	earliest := uc.policy.EarliestStart(now)
	slots := make([]Slot, 0, len(result.Slots))
	for _, s := range result.Slots {
		if s.Start.Before(earliest) {
			continue
		}
		slots = append(slots, Slot{Start: s.Start, End: s.End})
	}

	resp := &Response{
		Date:            date,
		SalonID:         req.SalonID,
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		Available:       len(slots) > 0,
		Reason:          result.Reason,
		ServiceDuration: result.ServiceDuration,
		Slots:           slots,
	}
	if !resp.Available && resp.Reason == "" {
		resp.Reason = scheduling.ReasonFullyBooked
	}

	uc.logger.Info("CheckAvailability: %d free slots for staff=%d on %s",
		len(slots), req.StaffID, date.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) checkReferences(ctx context.Context, req *Request) error {
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CheckAvailability: salon id=%d not found", req.SalonID)
			return ErrSalonNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get salon id=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: failed to get salon: %v", ErrDependency, err)
	}
	if !salon.IsActive {
		uc.logger.Warn("CheckAvailability: salon id=%d is not active", req.SalonID)
		return ErrSalonNotFound
	}

	staff, err := uc.catalogRepo.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CheckAvailability: staff id=%d not found", req.StaffID)
			return ErrStaffNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get staff id=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrDependency, err)
	}
	if err := validateStaff(staff, req.SalonID); err != nil {
		uc.logger.Warn("CheckAvailability: staff id=%d does not work in salon id=%d", req.StaffID, req.SalonID)
		return err
	}

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CheckAvailability: service id=%d not found", req.ServiceID)
			return ErrServiceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrDependency, err)
	}
	if err := validateService(service, req.SalonID); err != nil {
		uc.logger.Warn("CheckAvailability: service id=%d is not offered by salon id=%d", req.ServiceID, req.SalonID)
		return err
	}

	return nil
}
