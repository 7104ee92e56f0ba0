package mark_completed

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	markCompleted "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/mark_completed"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgUpdateFailed         = "не удалось изменить статус записи"
)

type Handler struct {
	useCase MarkCompletedUseCase
	logger  Logger
}

func NewHandler(useCase MarkCompletedUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	result, err := h.useCase.Execute(r.Context(), &markCompleted.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, markCompleted.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/complete - Invalid appointment ID: %q", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, markCompleted.ErrUpdateFailed):
			h.logger.Error("POST /appointments/{id}/complete - Update failed: id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpdateFailed)

		default:
			h.logger.Error("POST /appointments/{id}/complete - Failed to complete: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/complete - Appointment completed: id=%s, synced=%t", appointmentID, result.Synced)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
