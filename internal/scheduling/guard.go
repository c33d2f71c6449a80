package scheduling

import (
	"context"
	"fmt"
	"time"
)

// Guard проверяет перед вставкой, что время мастера все еще свободно.
// Сам блокировок не берет: вызывающий код держит блокировку мастера и транзакцию.
type Guard struct {
	collector *Collector
	logger    Logger
}

// NewGuard создает проверку конфликтов записи
func NewGuard(finder AppointmentFinder, logger Logger) *Guard {
	return &Guard{
		collector: NewCollector(finder),
		logger:    logger,
	}
}

// Check возвращает ErrSlotUnavailable, если [start, start+duration) пересекает существующую запись.
// Занятость всегда перечитывается из хранилища.
func (g *Guard) Check(ctx context.Context, staffID int64, start time.Time, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("%w: non-positive duration %s", ErrConfiguration, duration)
	}
	end := start.Add(duration)

	dayStart := StartOfDay(start)
	to := dayStart.AddDate(0, 0, 1)
	if end.After(to) {
		to = end
	}

	busy, err := g.collector.CollectRange(ctx, staffID, dayStart, to)
	if err != nil {
		return err
	}

	for _, b := range busy {
		if b.Overlaps(start, end) {
			g.logger.Warn("BookingGuard: staff id=%d requested [%s, %s) conflicts with [%s, %s)",
				staffID, start.Format(time.RFC3339), end.Format(time.RFC3339),
				b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339))
			return fmt.Errorf("%w: staff=%d start=%s", ErrSlotUnavailable, staffID, start.Format(time.RFC3339))
		}
	}

	return nil
}
