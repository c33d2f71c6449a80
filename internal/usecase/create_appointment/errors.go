package create_appointment

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или не активен
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден, не активен или работает в другом салоне
	ErrStaffNotFound = errors.New("create_appointment: staff not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, не активна или принадлежит другому салону
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrCustomerNotFound возвращается, когда клиента нет в CustomerService
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrInvalidDate возвращается, когда время записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: appointment time is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrTooLateToBook возвращается, когда до начала меньше minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSalonClosed возвращается, когда салон закрыт в этот день
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда услуга не помещается в рабочее время
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment is outside working hours")

	// ErrSlotUnavailable возвращается, когда время мастера уже занято
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrConfiguration расписание салона или длительность услуги заданы некорректно
	ErrConfiguration = errors.New("create_appointment: salon configuration is broken")

	// ErrDependency хранилище или блокировка недоступны, запрос можно повторить
	ErrDependency = errors.New("create_appointment: dependency unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
