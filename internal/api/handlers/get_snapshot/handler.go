package get_snapshot

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
)

const msgNoSnapshot = "слот не выбран"

type Handler struct {
	source SnapshotSource
	logger Logger
}

func NewHandler(source SnapshotSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/snapshot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	if snap == nil {
		handlers.RespondNotFound(w, msgNoSnapshot)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewSnapshotView(snap))
}
