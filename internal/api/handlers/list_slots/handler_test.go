package list_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
)

func TestHandle(t *testing.T) {
	cat := catalog.Default()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	rec := httptest.NewRecorder()
	NewHandler(cat, logger.NewNop()).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	all := cat.All()
	require.Len(t, resp.Slots, len(all))
	for i, slot := range all {
		assert.Equal(t, slot.ID, resp.Slots[i].ID)
		assert.Equal(t, slot.Capacity, resp.Slots[i].Capacity)
	}

	require.Len(t, resp.ServiceTypes, len(domain.ServiceTypes))
	assert.Equal(t, string(domain.ServiceConsultation), resp.ServiceTypes[0])
}
