package create_appointment

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.StartAt.Second() != 0 || req.StartAt.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must be a whole minute", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartTime проверяет дату и минимальное время до начала
func validateStartTime(startAt, now time.Time, policy domain.BookingPolicy) error {
	if !startAt.After(now) || policy.IsDateInPast(startAt, now) {
		return ErrInvalidDate
	}

	if policy.IsBeyondHorizon(startAt, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.AdvanceBookingDays)
	}

	if startAt.Before(policy.EarliestStart(now)) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, policy.MinBookingNoticeMinutes)
	}

	return nil
}

// validateStaff проверяет, что мастер работает в салоне
func validateStaff(staff *domain.Staff, salonID int64) error {
	if staff.SalonID != salonID || !staff.IsActive {
		return ErrStaffNotFound
	}
	return nil
}

// validateService проверяет, что услуга оказывается в салоне
func validateService(service *domain.Service, salonID int64) error {
	if service.SalonID != salonID || !service.IsActive {
		return ErrServiceNotFound
	}
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service id=%d has duration %d", ErrConfiguration, service.ID, service.DurationMinutes)
	}
	return nil
}
