package check_availability

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или не активен
	ErrSalonNotFound = errors.New("check_availability: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден, не активен или работает в другом салоне
	ErrStaffNotFound = errors.New("check_availability: staff not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, не активна или принадлежит другому салону
	ErrServiceNotFound = errors.New("check_availability: service not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("check_availability: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("check_availability: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrConfiguration расписание салона или длительность услуги заданы некорректно
	ErrConfiguration = errors.New("check_availability: salon configuration is broken")

	// ErrDependency хранилище недоступно, запрос можно повторить
	ErrDependency = errors.New("check_availability: dependency unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
