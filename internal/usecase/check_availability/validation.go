package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дату можно показывать для записи
func validateDate(date, now time.Time, policy domain.BookingPolicy) error {
	if policy.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if policy.IsBeyondHorizon(date, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.AdvanceBookingDays)
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
	return nil
}
