package domain

import "time"

// BookingPolicy booking limits of the single business location
type BookingPolicy struct {
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	Location                *time.Location
}

// Loc returns the business location, UTC if not set
func (p BookingPolicy) Loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// CalendarDate returns midnight of the date's calendar day in the business location.
// Only year, month and day of the input are used.
func (p BookingPolicy) CalendarDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.Loc())
}

// Today returns midnight of the current day in the business location
func (p BookingPolicy) Today(now time.Time) time.Time {
	return p.CalendarDate(now.In(p.Loc()))
}

// IsDateInPast returns true if the calendar date is before today
func (p BookingPolicy) IsDateInPast(date, now time.Time) bool {
	return p.CalendarDate(date).Before(p.Today(now))
}

// IsBeyondHorizon returns true if the date is later than the advance booking limit
func (p BookingPolicy) IsBeyondHorizon(date, now time.Time) bool {
	if p.AdvanceBookingDays <= 0 {
		return false
	}
	return p.CalendarDate(date).After(p.Today(now).AddDate(0, 0, p.AdvanceBookingDays))
}

// EarliestStart returns the earliest start time that still satisfies the minimum notice
func (p BookingPolicy) EarliestStart(now time.Time) time.Time {
	return now.Add(time.Duration(p.MinBookingNoticeMinutes) * time.Minute)
}
