package update_salon_hours

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons/models"
)

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	Hours map[string]models.DayHours `json:"hours"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateHoursRequest) ToServiceRequest(userID int64) *models.UpdateHoursRequest {
	return &models.UpdateHoursRequest{
		UserID: userID,
		Hours:  r.Hours,
	}
}
