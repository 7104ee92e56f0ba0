package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	createAppointment "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "заполните имя, телефон и выберите слот"
	msgUnknownSlot        = "слот не найден"
	msgBookingRejected    = "сервис записей отказал в записи"
	msgInFlight           = "запись с этой формы уже отправлена, дождитесь ответа"
	msgNetworkFailure     = "сервис записей недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrUnknownSlot):
			h.logger.Warn("POST /appointments - Unknown slot: %q", req.SlotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, createAppointment.ErrSubmissionInFlight):
			h.logger.Warn("POST /appointments - Submission in flight: form=%q", req.FormID)
			handlers.RespondConflict(w, msgInFlight)

		case errors.Is(err, createAppointment.ErrBookingRejected):
			message := msgBookingRejected
			if serverMessage, ok := appointmentservice.RejectionMessage(err); ok && serverMessage != "" {
				message = serverMessage
			}
			h.logger.Warn("POST /appointments - Booking rejected: slot=%q, message=%q", req.SlotID, message)
			handlers.RespondConflict(w, message)

		case errors.Is(err, createAppointment.ErrNetworkFailure):
			h.logger.Error("POST /appointments - Appointment service unreachable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNetworkFailure)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: slot=%q, synced=%t", useCaseReq.SlotID, result.Synced)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
