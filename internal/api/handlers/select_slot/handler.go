package select_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	selectSlot "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_slot"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownSlot        = "слот не найден"
	msgSuperseded         = "выбор изменен повторно, ответ устарел"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/selection/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &selectSlot.Request{SlotID: req.SlotID})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownSlot):
			h.logger.Warn("PUT /selection/slot - Unknown slot: %q", req.SlotID)
			handlers.RespondNotFound(w, msgUnknownSlot)

		case errors.Is(err, sequence.ErrSuperseded):
			handlers.RespondConflict(w, msgSuperseded)

		default:
			h.logger.Error("PUT /selection/slot - Failed to select slot: slot=%q, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /selection/slot - Slot selected: slot=%q", result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
