package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
)

const (
	msgInvalidSalonID   = "invalid salon id"
	msgInvalidStaffID   = "invalid staff id"
	msgInvalidServiceID = "invalid service id"
	msgMissingServiceID = "serviceId is required"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgSalonNotFound    = "salon not found"
	msgStaffNotFound    = "staff member not found"
	msgServiceNotFound  = "service not found"
	msgDateInPast       = "date is in the past"
	msgDateTooFar       = "date is too far in the future"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/staff/{staffId}/availability
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := handlers.ParseID(vars["salonId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	staffID, err := handlers.ParseID(vars["staffId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := handlers.ParseID(serviceIDStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, staffID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, checkAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Staff not found: salon_id=%d, staff_id=%d", salonID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, checkAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Service not found: salon_id=%d, service_id=%d", salonID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidDate):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Date in past: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Date too far: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, checkAvailability.ErrDependency):
			h.logger.Warn("GET /salons/{id}/staff/{id}/availability - Dependency unavailable: salon_id=%d, staff_id=%d, error=%v",
				salonID, staffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /salons/{id}/staff/{id}/availability - Failed to check availability: salon_id=%d, staff_id=%d, service_id=%d, error=%v",
				salonID, staffID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/staff/{id}/availability - Availability checked: salon_id=%d, staff_id=%d, date=%s, slots_count=%d",
		salonID, staffID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
