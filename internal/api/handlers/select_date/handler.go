package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	selectDate "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_date"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRefreshFailed      = "не удалось загрузить записи, сервис записей недоступен"
	msgSuperseded         = "дата изменена повторно, ответ устарел"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/selection/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /selection/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, sequence.ErrSuperseded):
			h.logger.Warn("PUT /selection/date - Superseded: date=%s", req.Date)
			handlers.RespondConflict(w, msgSuperseded)

		case errors.Is(err, selectDate.ErrRefreshFailed):
			h.logger.Error("PUT /selection/date - Refresh failed: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRefreshFailed)

		default:
			h.logger.Error("PUT /selection/date - Failed to select date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /selection/date - Date selected: date=%s, appointments=%d", req.Date, result.Overview.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
