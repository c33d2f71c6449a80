package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string     `json:"date"`
	SalonID         int64      `json:"salonId"`
	StaffID         int64      `json:"staffId"`
	ServiceID       int64      `json:"serviceId"`
	Available       bool       `json:"available"`
	Reason          string     `json:"reason,omitempty"`
	TimeSlots       []TimeSlot `json:"timeSlots"`
	ServiceDuration int        `json:"serviceDuration"` // минуты
}

// TimeSlot свободный слот
type TimeSlot struct {
	Time          string `json:"time"`          // RFC 3339
	FormattedTime string `json:"formattedTime"` // 9:00 AM
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Time:          slot.Start.Format(time.RFC3339),
			FormattedTime: slot.Start.Format(domain.DisplayTimeFormat),
		}
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		Available:       resp.Available,
		Reason:          resp.Reason,
		TimeSlots:       slots,
		ServiceDuration: int(resp.ServiceDuration / time.Minute),
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(salonID, staffID, serviceID int64, dateStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		SalonID:   salonID,
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
