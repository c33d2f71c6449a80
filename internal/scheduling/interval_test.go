package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	busy := Interval{Start: at(10, 0), End: at(10, 30)}

	assert.True(t, busy.Overlaps(at(10, 15), at(10, 45)), "partial overlap")
	assert.True(t, busy.Overlaps(at(9, 45), at(10, 15)), "overlap at the head")
	assert.True(t, busy.Overlaps(at(9, 0), at(11, 0)), "covers the interval")
	assert.False(t, busy.Overlaps(at(10, 30), at(11, 0)), "back-to-back after")
	assert.False(t, busy.Overlaps(at(9, 30), at(10, 0)), "back-to-back before")
}

func TestNewIntervalSet_SortsAndMerges(t *testing.T) {
	input := []Interval{
		{Start: at(14, 0), End: at(15, 0)},
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(9, 30), End: at(10, 30)},
		{Start: at(10, 30), End: at(11, 0)},
		{Start: at(12, 0), End: at(12, 0)},
	}

	set := NewIntervalSet(input)

	assert.Equal(t, []Interval{
		{Start: at(9, 0), End: at(11, 0)},
		{Start: at(14, 0), End: at(15, 0)},
	}, set.Intervals())
	assert.Equal(t, at(14, 0), input[0].Start, "input is not modified")
}

func TestIntervalSet_Overlaps(t *testing.T) {
	set := NewIntervalSet([]Interval{
		{Start: at(11, 0), End: at(12, 0)},
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(15, 0), End: at(16, 0)},
	})

	tests := []struct {
		name  string
		start int
		end   int
		want  bool
	}{
		{"before everything", 8*60 + 0, 9 * 60, false},
		{"inside first", 9*60 + 10, 9*60 + 20, true},
		{"gap after first", 9*60 + 30, 11 * 60, false},
		{"tail overlaps second", 10*60 + 30, 11*60 + 30, true},
		{"starts at end of second", 12 * 60, 13 * 60, false},
		{"spans third", 14 * 60, 17 * 60, true},
		{"after everything", 16 * 60, 18 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := at(0, tt.start)
			end := at(0, tt.end)
			assert.Equal(t, tt.want, set.Overlaps(start, end))
		})
	}

	assert.False(t, NewIntervalSet(nil).Overlaps(at(9, 0), at(10, 0)))
}
