package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Collector собирает занятые интервалы мастера
type Collector struct {
	finder AppointmentFinder
}

// NewCollector создает сборщик занятых интервалов
func NewCollector(finder AppointmentFinder) *Collector {
	return &Collector{finder: finder}
}

// Collect возвращает занятые интервалы мастера за календарный день date.
// Порядок интервалов не гарантируется.
func (c *Collector) Collect(ctx context.Context, staffID int64, date time.Time) ([]Interval, error) {
	dayStart := StartOfDay(date)
	return c.CollectRange(ctx, staffID, dayStart, dayStart.AddDate(0, 0, 1))
}

// CollectRange возвращает занятые интервалы мастера, пересекающие [from, to)
func (c *Collector) CollectRange(ctx context.Context, staffID int64, from, to time.Time) ([]Interval, error) {
	appointments, err := c.finder.FindByStaffInRange(ctx, staffID, from, to, domain.OccupyingStatuses)
	if err != nil {
		return nil, fmt.Errorf("%w: find appointments staff=%d [%s, %s): %w",
			ErrDependency, staffID, from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}

	intervals := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		if !a.OccupiesCalendar() {
			continue
		}
		intervals = append(intervals, Interval{Start: a.StartAt, End: a.EndAt()})
	}

	return intervals, nil
}
