package get_overview

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
)

type Handler struct {
	calculator Calculator
	logger     Logger
}

func NewHandler(calculator Calculator, logger Logger) *Handler {
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle GET /api/v1/overview
// Сводка строится по кэшу, запросов в сервис записей нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, handlers.NewOverviewView(h.calculator.Overview()))
}
