package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// SlotsResponse каталог слотов и типов приема
type SlotsResponse struct {
	Slots        []handlers.SlotView `json:"slots"`
	ServiceTypes []string            `json:"serviceTypes"`
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.catalog.All()

	response := SlotsResponse{
		Slots:        make([]handlers.SlotView, 0, len(slots)),
		ServiceTypes: make([]string, 0, len(domain.ServiceTypes)),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, handlers.NewSlotView(s))
	}
	for _, t := range domain.ServiceTypes {
		response.ServiceTypes = append(response.ServiceTypes, string(t))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
