package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	createAppointment "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createAppointment.Response)
	return resp, args.Error(1)
}

func doRequest(t *testing.T, uc CreateAppointmentUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandle_Created(t *testing.T) {
	uc := &useCaseMock{}
	created := domain.Appointment{
		ID:          "apt-7",
		Name:        "Ann",
		Phone:       "123",
		ServiceType: domain.ServiceCheckup,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      catalog.SlotMorning4,
		Status:      domain.StatusPending,
	}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createAppointment.Request) bool {
		return r.Name == "Ann" && r.Date.Equal(created.Date) && r.FormID == "f1"
	})).Return(&createAppointment.Response{Created: &created, Synced: true}, nil)

	rec := doRequest(t, uc, `{"date":"2025-10-15","name":"Ann","phone":"123","serviceType":"Checkup","formId":"f1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Synced)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "apt-7", resp.Appointment.ID)
	assert.Equal(t, domain.NotAssignedTime, resp.Appointment.DisplayTime)

	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", fmt.Errorf("%w: name is required", createAppointment.ErrInvalidInput), http.StatusBadRequest, msgInvalidInput},
		{"unknown slot", fmt.Errorf("%w: \"x\"", catalog.ErrUnknownSlot), http.StatusNotFound, msgUnknownSlot},
		{"in flight", createAppointment.ErrSubmissionInFlight, http.StatusConflict, msgInFlight},
		{
			"rejected with server message",
			fmt.Errorf("%w: %w", createAppointment.ErrBookingRejected,
				&appointmentservice.RejectedError{StatusCode: http.StatusConflict, Message: "Slot is full"}),
			http.StatusConflict,
			"Slot is full",
		},
		{"network", createAppointment.ErrNetworkFailure, http.StatusServiceUnavailable, msgNetworkFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(t, uc, `{"name":"Ann","phone":"123","serviceType":"Checkup","formId":"f1"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := &useCaseMock{}

	rec := doRequest(t, uc, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, uc, `{"date":"15.10.2025","name":"Ann"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidDate, decodeError(t, rec).Message)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
