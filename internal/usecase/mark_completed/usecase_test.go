package mark_completed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice/appointmentservicetest"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/resync"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/snapshot"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, fake *appointmentservicetest.Fake) (*UseCase, *appointments.Store) {
	t.Helper()

	log := logger.NewNop()
	store := appointments.NewStore(fake, nil, log)
	require.NoError(t, store.Refresh(context.Background(), testDate))

	state := selection.New(testDate)
	state.SelectSlot(catalog.SlotMorning1)
	calc := snapshot.NewCalculator(catalog.Default(), store, fake, log)
	syncer := resync.NewSyncer(store, calc, state, nil, log)

	return NewUseCase(fake, state, syncer, log), store
}

func TestExecute_CompletesAndRefreshes(t *testing.T) {
	fake := appointmentservicetest.NewFake()
	id := fake.Add(testDate, catalog.SlotMorning1, "Ann", domain.StatusPending)
	uc, store := newFixture(t, fake)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: id})
	require.NoError(t, err)
	assert.True(t, resp.Synced)
	assert.Equal(t, 1, resp.Overview.Slots[0].Completed)
	require.NotNil(t, resp.Snapshot)

	records := store.AppointmentsFor(catalog.SlotMorning1)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusCompleted, records[0].Status)
}

func TestExecute_RepeatIsForwarded(t *testing.T) {
	fake := appointmentservicetest.NewFake()
	id := fake.Add(testDate, catalog.SlotMorning1, "Ann", domain.StatusCompleted)
	uc, _ := newFixture(t, fake)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: id})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{AppointmentID: id})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.Calls(appointmentservicetest.OpUpdate))
}

func TestExecute_FailureLeavesStatus(t *testing.T) {
	fake := appointmentservicetest.NewFake()
	id := fake.Add(testDate, catalog.SlotMorning1, "Ann", domain.StatusPending)
	uc, store := newFixture(t, fake)
	fake.UpdateErr = &appointmentservice.RejectedError{StatusCode: 500, Message: "Failed to update status"}
	listCalls := fake.Calls(appointmentservicetest.OpList)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: id})
	require.ErrorIs(t, err, ErrUpdateFailed)
	assert.ErrorIs(t, err, appointmentservice.ErrRejected)

	assert.Equal(t, domain.StatusPending, store.All()[0].Status)
	assert.Equal(t, listCalls, fake.Calls(appointmentservicetest.OpList))
}

func TestExecute_UnknownAppointment(t *testing.T) {
	fake := appointmentservicetest.NewFake()
	uc, _ := newFixture(t, fake)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: "apt-404"})
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestExecute_EmptyID(t *testing.T) {
	fake := appointmentservicetest.NewFake()
	uc, _ := newFixture(t, fake)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, fake.Calls(appointmentservicetest.OpUpdate))
}
