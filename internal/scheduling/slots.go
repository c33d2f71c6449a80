package scheduling

import (
	"iter"
	"time"
)

// Slot кандидат на запись, End = Start + длительность услуги
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots перечисляет слоты от открытия с шагом granularity,
// пока услуга успевает закончиться до закрытия.
// Последовательность ленивая, ее можно обходить повторно.
func GenerateSlots(window Window, duration, granularity time.Duration) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if window.Closed || duration <= 0 || granularity <= 0 {
			return
		}
		for current := window.Open; !current.Add(duration).After(window.Close); current = current.Add(granularity) {
			if !yield(Slot{Start: current, End: current.Add(duration)}) {
				return
			}
		}
	}
}

// FreeSlots оставляет слоты, весь интервал которых свободен
func FreeSlots(window Window, busy []Interval, duration, granularity time.Duration) []Slot {
	set := NewIntervalSet(busy)

	free := make([]Slot, 0)
	for slot := range GenerateSlots(window, duration, granularity) {
		if set.Overlaps(slot.Start, slot.End) {
			continue
		}
		free = append(free, slot)
	}
	return free
}
