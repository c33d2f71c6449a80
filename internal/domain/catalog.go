package domain

import "time"

// Service represents a salon service offering
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	DurationMinutes int
	Price           *float64
	IsActive        bool
}

// Duration returns the service duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// PriceOrZero returns the price or 0 if it is not set
func (s *Service) PriceOrZero() float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}

// Staff represents a salon employee who can be booked
type Staff struct {
	ID       int64
	SalonID  int64
	Name     string
	IsActive bool
}
