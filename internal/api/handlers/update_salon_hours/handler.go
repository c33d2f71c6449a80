package update_salon_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons"
)

const (
	msgInvalidSalonID     = "invalid salon id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgSalonNotFound      = "salon not found"
	msgForbidden          = "access denied"
	msgInvalidHours       = "invalid working hours, expected HH:MM with open time before close time"
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

// Handle PUT /api/v1/salons/{salonId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := handlers.ParseID(mux.Vars(r)["salonId"])
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHours(r.Context(), salonID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, salons.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, salons.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/hours - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, salons.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /salons/{id}/hours - Failed to update hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/hours - Hours replaced successfully: salon_id=%d, user_id=%d", salonID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
