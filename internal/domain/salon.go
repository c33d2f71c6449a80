package domain

import "time"

// Salon represents a business location
type Salon struct {
	ID       int64
	Name     string
	OwnerID  int64
	IsActive bool
}

// IsOwnedBy returns true if the user owns the salon
func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// DayHours opening hours for a single weekday, times are "HH:MM"
type DayHours struct {
	IsOpen    bool
	OpenTime  string
	CloseTime string
}

// WeeklyHours opening hours keyed by weekday. A missing weekday means closed.
type WeeklyHours map[time.Weekday]DayHours

// For returns the hours for the weekday of the date
func (w WeeklyHours) For(date time.Time) (DayHours, bool) {
	h, ok := w[date.Weekday()]
	return h, ok
}
