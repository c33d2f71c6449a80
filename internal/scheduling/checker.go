package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	ReasonClosed      = "closed"
	ReasonFullyBooked = "fully_booked"
)

// Result результат проверки доступности
type Result struct {
	Available       bool
	Slots           []Slot
	ServiceDuration time.Duration
	Reason          string
}

// Checker считает свободные слоты мастера на дату
type Checker struct {
	hours       HoursSource
	durations   DurationSource
	collector   *Collector
	granularity time.Duration
	logger      Logger
}

// NewChecker создает проверку доступности с шагом domain.SlotGranularity
func NewChecker(hours HoursSource, durations DurationSource, finder AppointmentFinder, logger Logger) *Checker {
	return &Checker{
		hours:       hours,
		durations:   durations,
		collector:   NewCollector(finder),
		granularity: domain.SlotGranularity,
		logger:      logger,
	}
}

// Check возвращает свободные слоты. Ссылки на салон, мастера и услугу должны быть уже проверены.
// Отсутствие слотов не ошибка: Available=false и пустой Slots.
func (c *Checker) Check(ctx context.Context, salonID, staffID, serviceID int64, date time.Time) (*Result, error) {
	duration, err := c.durations.GetServiceDuration(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: get duration of service=%d: %v", ErrDependency, serviceID, err)
	}
	if duration <= 0 {
		c.logger.Error("Availability: service id=%d has non-positive duration %s", serviceID, duration)
		return nil, fmt.Errorf("%w: service=%d duration %s", ErrConfiguration, serviceID, duration)
	}

	hours, err := c.hours.GetHours(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("%w: get hours of salon=%d: %v", ErrDependency, salonID, err)
	}

	window, err := ResolveOperatingHours(hours, date)
	if err != nil {
		c.logger.Error("Availability: salon id=%d has broken operating hours: %v", salonID, err)
		return nil, err
	}
	if window.Closed {
		return &Result{
			Available:       false,
			Slots:           []Slot{},
			ServiceDuration: duration,
			Reason:          ReasonClosed,
		}, nil
	}

	busy, err := c.collector.Collect(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	slots := FreeSlots(window, busy, duration, c.granularity)

	result := &Result{
		Available:       len(slots) > 0,
		Slots:           slots,
		ServiceDuration: duration,
	}
	if !result.Available {
		result.Reason = ReasonFullyBooked
	}
	return result, nil
}
