package get_salon_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons"
)

const (
	msgInvalidSalonID = "invalid salon id"
	msgSalonNotFound  = "salon not found"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.ParseID(mux.Vars(r)["salonId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetHours(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, salons.ErrSalonNotFound) {
			h.logger.Warn("GET /salons/{id}/hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("GET /salons/{id}/hours - Failed to get hours: salon_id=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/hours - Hours retrieved successfully: salon_id=%d", salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
