package scheduling

import "errors"

var (
	// ErrConfiguration некорректные данные расписания или услуги, повтор не поможет
	ErrConfiguration = errors.New("scheduling: invalid operating hours configuration")

	// ErrDependency хранилище недоступно, можно повторить позже
	ErrDependency = errors.New("scheduling: dependency unavailable")

	// ErrSlotUnavailable выбранное время пересекается с существующей записью
	ErrSlotUnavailable = errors.New("scheduling: slot is not available")
)
