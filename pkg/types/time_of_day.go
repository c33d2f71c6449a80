package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeOfDay возвращается при некорректном формате времени
var ErrInvalidTimeOfDay = errors.New("invalid time of day format, expected HH:MM")

const minutesInDay = 24 * 60

// TimeOfDay время суток с точностью до минуты ("HH:MM").
// Не привязано к дате; для получения момента времени используйте On.
type TimeOfDay struct {
	minutes int
	valid   bool
}

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute, valid: true}, nil
}

// FromTime берет часы и минуты из time.Time (секунды отбрасываются)
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// ParseTimeOfDay разбирает строку "HH:MM".
// Также принимает "HH:MM:SS" с нулевыми секундами, как PostgreSQL отдает колонки типа TIME.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, ":")
	if len(parts) == 3 {
		if parts[2] != "00" {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		parts = parts[:2]
	}
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	// Atoi пропускает знак, поэтому "+9:00" отсекаем здесь
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return NewTimeOfDay(hour, minute)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int { return t.minutes }

// IsZero true, если значение не было задано
func (t TimeOfDay) IsZero() bool { return !t.valid }

func (t TimeOfDay) IsBefore(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) IsAfter(other TimeOfDay) bool  { return t.minutes > other.minutes }
func (t TimeOfDay) Equal(other TimeOfDay) bool    { return t.minutes == other.minutes }

// AddMinutes сдвигает время; выход за пределы суток - ошибка
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	total := t.minutes + m
	if total < 0 || total >= minutesInDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d min crosses day boundary", ErrInvalidTimeOfDay, t, m)
	}
	return TimeOfDay{minutes: total, valid: true}, nil
}

// On возвращает момент времени в указанную дату (в локации даты).
// Дата не модифицируется.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer (колонка TIME)
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = FromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeOfDay, src)
	}
}
