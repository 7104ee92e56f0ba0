package select_date

import (
	"context"
	"sync"
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
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

var (
	day1 = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	fake   *appointmentservicetest.Fake
	store  *appointments.Store
	state  *selection.State
	syncer *resync.Syncer
	uc     *UseCase
}

func newFixture() *fixture {
	log := logger.NewNop()
	fake := appointmentservicetest.NewFake()
	state := selection.New(day1)
	store := appointments.NewStore(fake, nil, log).WithDateFilter(state)
	calc := snapshot.NewCalculator(catalog.Default(), store, fake, log)
	syncer := resync.NewSyncer(store, calc, state, nil, log)

	return &fixture{
		fake:   fake,
		store:  store,
		state:  state,
		syncer: syncer,
		uc:     NewUseCase(state, syncer, log),
	}
}

func TestExecute_ZeroDate(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, f.fake.Calls(appointmentservicetest.OpList))
}

func TestExecute_LoadsDateAndSnapshot(t *testing.T) {
	f := newFixture()
	f.fake.Add(day2, catalog.SlotEvening1, "Ann", domain.StatusPending)
	f.state.SelectSlot(catalog.SlotEvening1)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: day2.Add(9 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, day2, resp.Date)
	assert.Equal(t, catalog.SlotEvening1, resp.SlotID)
	assert.Equal(t, 1, resp.Overview.Total)
	require.NotNil(t, resp.Snapshot)
	assert.Equal(t, 1, resp.Snapshot.Booked)
	assert.Equal(t, day2, f.store.Date())
}

func TestExecute_RefreshFailure(t *testing.T) {
	f := newFixture()
	f.fake.Add(day1, catalog.SlotEvening1, "Ann", domain.StatusPending)
	_, err := f.uc.Execute(context.Background(), &Request{Date: day1})
	require.NoError(t, err)

	f.fake.ListErr = appointmentservice.ErrUnavailable

	_, err = f.uc.Execute(context.Background(), &Request{Date: day1})
	assert.ErrorIs(t, err, ErrRefreshFailed)
	assert.ErrorIs(t, err, appointmentservice.ErrUnavailable)
	assert.Equal(t, 0, f.store.Count())
}

// Ответ для первой даты приходит после того, как загрузилась вторая
func TestExecute_StaleDateDiscarded(t *testing.T) {
	f := newFixture()
	f.fake.Add(day1, catalog.SlotMorning1, "Old", domain.StatusPending)
	f.fake.Add(day2, catalog.SlotMorning1, "New", domain.StatusPending)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.fake.BeforeList = func(date time.Time) {
		if date.Equal(day1) {
			once.Do(func() { close(entered) })
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.Execute(context.Background(), &Request{Date: day1})
		done <- err
	}()
	<-entered

	resp, err := f.uc.Execute(context.Background(), &Request{Date: day2})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Overview.Total)

	close(release)
	assert.ErrorIs(t, <-done, sequence.ErrSuperseded)

	assert.Equal(t, day2, f.store.Date())
	all := f.store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Name)
}

// Слот выбран, пока загружается новая дата, а загрузка затем падает
func TestExecute_SlotSelectedDuringFailedDateLoad(t *testing.T) {
	f := newFixture()
	f.fake.Add(day1, catalog.SlotMorning4, "Ann", domain.StatusPending)
	f.fake.Add(day1, catalog.SlotMorning4, "Bob", domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{Date: day1})
	require.NoError(t, err)
	require.Equal(t, 2, f.store.Count())

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.fake.BeforeList = func(date time.Time) {
		if date.Equal(day2) {
			once.Do(func() { close(entered) })
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.Execute(context.Background(), &Request{Date: day2})
		done <- err
	}()
	<-entered

	// кэш еще хранит первую дату
	f.state.SelectSlot(catalog.SlotMorning4)
	snap, err := f.syncer.RefreshSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, day2, snap.Date)
	assert.True(t, snap.NotLoaded)
	assert.Equal(t, 0, snap.Booked)
	assert.Empty(t, snap.Appointments)

	f.fake.ListErr = appointmentservice.ErrUnavailable
	close(release)

	assert.ErrorIs(t, <-done, ErrRefreshFailed)
	assert.Nil(t, f.state.Snapshot())
	assert.Equal(t, day2, f.store.Date())
	assert.Equal(t, 0, f.store.Count())
}
