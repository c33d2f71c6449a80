package scheduling

import (
	"slices"
	"sort"
	"time"
)

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение с [start, end)
func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && start.Before(i.End)
}

// IntervalSet отсортированные непересекающиеся интервалы
type IntervalSet struct {
	items []Interval
}

// NewIntervalSet сортирует интервалы по началу и склеивает пересекающиеся и смежные.
// Входной срез не изменяется.
func NewIntervalSet(intervals []Interval) IntervalSet {
	items := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.End.After(iv.Start) {
			items = append(items, iv)
		}
	}
	slices.SortFunc(items, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := items[:0]
	for _, iv := range items {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return IntervalSet{items: merged}
}

// Len количество интервалов после склейки
func (s IntervalSet) Len() int {
	return len(s.items)
}

// Intervals копия интервалов множества
func (s IntervalSet) Intervals() []Interval {
	return slices.Clone(s.items)
}

// Overlaps проверяет, пересекает ли [start, end) хотя бы один интервал
func (s IntervalSet) Overlaps(start, end time.Time) bool {
	// Интервалы не пересекаются, поэтому концы тоже отсортированы
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].End.After(start)
	})
	return i < len(s.items) && s.items[i].Start.Before(end)
}
