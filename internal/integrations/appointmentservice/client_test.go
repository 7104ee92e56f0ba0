package appointmentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/api", 2*time.Second, logger.NewNop(), nil)
}

func TestListAppointments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/appointments", r.URL.Path)
		assert.Equal(t, "2025-10-15", r.URL.Query().Get("date"))

		_, _ = w.Write([]byte(`{"appointments":[
			{"id":"a1","name":"Ann","phone":"123","service_type":"Checkup","appointment_date":"2025-10-15T00:00:00.000Z","time_slot":"1:30 PM - 2:00 PM","status":"pending","estimated_time":"1:30 PM"},
			{"id":42,"name":"Bob","phone":"456","service_type":"Treatment","appointment_date":"2025-10-15","time_slot":"1:30 PM - 2:00 PM","status":"completed"}
		]}`))
	})

	list, err := client.ListAppointments(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, ID("a1"), list[0].ID)
	assert.Equal(t, ID("42"), list[1].ID)

	first := list[0].ToDomain(testDate)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.Equal(t, "1:30 PM - 2:00 PM", first.SlotID)
	assert.Equal(t, testDate, first.Date)
	require.NotNil(t, first.EstimatedTime)
	assert.Equal(t, "1:30 PM", *first.EstimatedTime)
}

func TestListAppointments_AbsentListIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	list, err := client.ListAppointments(context.Background(), testDate)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListAppointments_InvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.ListAppointments(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListAppointments_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop(), nil)

	_, err := client.ListAppointments(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateSlot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments/validate", r.URL.Path)

		var body ValidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-10-15", body.AppointmentDate)
		assert.Equal(t, "10:30 AM - 11:30 AM", body.TimeSlot)

		_, _ = w.Write([]byte(`{"valid":true,"estimated_time":"10:45 AM"}`))
	})

	result, err := client.ValidateSlot(context.Background(), testDate, "10:30 AM - 11:30 AM")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.NotNil(t, result.EstimatedTime)
	assert.Equal(t, "10:45 AM", *result.EstimatedTime)
}

func TestValidateSlotWithGracefulDegradation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ValidateSlotWithGracefulDegradation(context.Background(), testDate, "10:30 AM - 11:30 AM")
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestCreateAppointment_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ann", body.Name)
		assert.Equal(t, "Checkup", body.ServiceType)

		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Slot is full"}`))
	})

	_, err := client.CreateAppointment(context.Background(), &CreateRequest{
		Name:            "Ann",
		Phone:           "123",
		ServiceType:     "Checkup",
		AppointmentDate: "2025-10-15",
		TimeSlot:        "1:30 PM - 2:00 PM",
	})
	require.ErrorIs(t, err, ErrRejected)

	msg, ok := RejectionMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Slot is full", msg)
}

func TestCreateAppointment_SuccessWithUnexpectedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`created`))
	})

	created, err := client.CreateAppointment(context.Background(), &CreateRequest{Name: "Ann"})
	assert.NoError(t, err)
	assert.Nil(t, created)
}

func TestUpdateStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/update-status", r.URL.Path)

		var body UpdateStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.ID == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Appointment not found"}`))
			return
		}
		assert.Equal(t, "completed", body.Status)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	require.NoError(t, client.UpdateStatus(context.Background(), "a1", domain.StatusCompleted))

	err := client.UpdateStatus(context.Background(), "missing", domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrRejected)
}
