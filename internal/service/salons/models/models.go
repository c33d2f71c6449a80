package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrUnknownWeekday возвращается при неизвестном названии дня недели
	ErrUnknownWeekday = errors.New("unknown weekday")

	// ErrInvalidHours возвращается при некорректных часах работы
	ErrInvalidHours = errors.New("invalid working hours")
)

// DayHours часы работы на один день
type DayHours struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`  // HH:MM
	CloseTime string `json:"closeTime,omitempty"` // HH:MM
}

// UpdateHoursRequest запрос на замену расписания салона.
// Ключи - названия дней недели в нижнем регистре, пропущенный день считается выходным
type UpdateHoursRequest struct {
	UserID int64               `json:"userId"`
	Hours  map[string]DayHours `json:"hours"`
}

// HoursResponse расписание салона на неделю
type HoursResponse struct {
	SalonID int64               `json:"salonId"`
	Hours   map[string]DayHours `json:"hours"`
}

// ToDomainHours валидирует и конвертирует расписание в domain модель
func (r *UpdateHoursRequest) ToDomainHours() (domain.WeeklyHours, error) {
	hours := make(domain.WeeklyHours, len(r.Hours))

	for name, day := range r.Hours {
		weekday, ok := parseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
		}

		if !day.IsOpen {
			hours[weekday] = domain.DayHours{IsOpen: false}
			continue
		}

		open, err := types.ParseTimeOfDay(day.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s open time: %v", ErrInvalidHours, name, err)
		}
		closeAt, err := types.ParseTimeOfDay(day.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s close time: %v", ErrInvalidHours, name, err)
		}
		if !open.IsBefore(closeAt) {
			return nil, fmt.Errorf("%w: %s opens at %s but closes at %s", ErrInvalidHours, name, open, closeAt)
		}

		hours[weekday] = domain.DayHours{
			IsOpen:    true,
			OpenTime:  open.String(),
			CloseTime: closeAt.String(),
		}
	}

	return hours, nil
}

// FromDomainHours конвертирует расписание в DTO, отсутствующие дни отдаются выходными
func FromDomainHours(salonID int64, hours domain.WeeklyHours) *HoursResponse {
	resp := &HoursResponse{
		SalonID: salonID,
		Hours:   make(map[string]DayHours, 7),
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := hours[weekday]
		if !day.IsOpen {
			resp.Hours[weekdayName(weekday)] = DayHours{IsOpen: false}
			continue
		}
		resp.Hours[weekdayName(weekday)] = DayHours{
			IsOpen:    true,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
		}
	}

	return resp
}

func weekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

func parseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if weekdayName(d) == name {
			return d, true
		}
	}
	return 0, false
}
