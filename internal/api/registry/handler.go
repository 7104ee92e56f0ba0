package registry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/registry"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD"
	msgInvalidInput       = "Name, phone and a known service type are required"
	msgInvalidSlot        = "Invalid time slot"
	msgSlotFull           = "Slot is full"
	msgInvalidStatus      = "Invalid status"
	msgNotFound           = "Appointment not found"
	msgInternal           = "Internal server error"
	msgStatusUpdated      = "Status updated"
)

// Handler HTTP API сервиса записей
type Handler struct {
	registry AppointmentRegistry
	logger   Logger
}

func NewHandler(registry AppointmentRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Register добавляет маршруты в роутер с префиксом /api
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/admin/appointments", h.List).Methods(http.MethodGet)
	api.HandleFunc("/admin/update-status", h.UpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/appointments/validate", h.Validate).Methods(http.MethodPost)
	api.HandleFunc("/appointments", h.Create).Methods(http.MethodPost)
}

// List GET /api/admin/appointments?date=YYYY-MM-DD
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid date: %v", err)
		respondMessage(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	list, err := h.registry.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list: %v", err)
		respondMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	response := appointmentservice.ListResponse{
		Appointments: make([]appointmentservice.Appointment, 0, len(list)),
	}
	for _, a := range list {
		response.Appointments = append(response.Appointments, fromDomain(a))
	}

	respondJSON(w, http.StatusOK, response)
}

// Validate POST /api/appointments/validate
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req appointmentservice.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /appointments/validate - Invalid request body: %v", err)
		respondMessage(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	result, err := h.registry.Validate(r.Context(), date, req.TimeSlot)
	if err != nil {
		h.logger.Error("POST /appointments/validate - Failed to validate: %v", err)
		respondMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	respondJSON(w, http.StatusOK, appointmentservice.ValidateResponse{
		Valid:         result.Valid,
		EstimatedTime: result.EstimatedTime,
	})
}

// Create POST /api/appointments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req appointmentservice.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		respondMessage(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	created, err := h.registry.Create(r.Context(), &registry.CreateRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		ServiceType: domain.ServiceType(req.ServiceType),
		Date:        date,
		SlotID:      req.TimeSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidInput):
			respondMessage(w, http.StatusBadRequest, msgInvalidInput)
		case errors.Is(err, registry.ErrInvalidSlot):
			respondMessage(w, http.StatusBadRequest, msgInvalidSlot)
		case errors.Is(err, registry.ErrSlotFull):
			respondMessage(w, http.StatusConflict, msgSlotFull)
		default:
			h.logger.Error("POST /appointments - Failed to create: %v", err)
			respondMessage(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	respondJSON(w, http.StatusOK, fromDomain(*created))
}

// UpdateStatus POST /api/admin/update-status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req appointmentservice.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /admin/update-status - Invalid request body: %v", err)
		respondMessage(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	err := h.registry.UpdateStatus(r.Context(), req.ID, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidInput), errors.Is(err, registry.ErrInvalidStatus):
			respondMessage(w, http.StatusBadRequest, msgInvalidStatus)
		case errors.Is(err, registry.ErrAppointmentNotFound):
			respondMessage(w, http.StatusNotFound, msgNotFound)
		default:
			h.logger.Error("POST /admin/update-status - Failed to update: %v", err)
			respondMessage(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	respondJSON(w, http.StatusOK, StatusUpdatedResponse{Message: msgStatusUpdated})
}

// parseDate принимает YYYY-MM-DD и ISO строки, берет первые 10 символов
func parseDate(value string) (time.Time, error) {
	if len(value) > len(domain.DateFormat) {
		value = value[:len(domain.DateFormat)]
	}
	return time.Parse(domain.DateFormat, value)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, appointmentservice.ErrorResponse{Message: message})
}
