package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Window рабочее окно салона на конкретную дату
type Window struct {
	Open   time.Time
	Close  time.Time
	Closed bool
}

// Length длительность окна, для закрытого дня 0
func (w Window) Length() time.Duration {
	if w.Closed {
		return 0
	}
	return w.Close.Sub(w.Open)
}

// Contains проверяет, что [start, end) целиком внутри окна
func (w Window) Contains(start, end time.Time) bool {
	if w.Closed {
		return false
	}
	return !start.Before(w.Open) && !end.After(w.Close)
}

// StartOfDay полночь даты в ее же локации
func StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

// ResolveOperatingHours возвращает рабочее окно на дату.
// Отсутствующий или закрытый день недели дает закрытое окно без ошибки.
func ResolveOperatingHours(hours domain.WeeklyHours, date time.Time) (Window, error) {
	day, ok := hours.For(date)
	if !ok || !day.IsOpen {
		return Window{Closed: true}, nil
	}

	open, err := types.ParseTimeOfDay(day.OpenTime)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %s open time %q: %v", ErrConfiguration, date.Weekday(), day.OpenTime, err)
	}
	closeAt, err := types.ParseTimeOfDay(day.CloseTime)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %s close time %q: %v", ErrConfiguration, date.Weekday(), day.CloseTime, err)
	}
	if !open.IsBefore(closeAt) {
		return Window{}, fmt.Errorf("%w: %s open time %s is not before close time %s",
			ErrConfiguration, date.Weekday(), open, closeAt)
	}

	midnight := StartOfDay(date)
	return Window{
		Open:  open.On(midnight),
		Close: closeAt.On(midnight),
	}, nil
}
