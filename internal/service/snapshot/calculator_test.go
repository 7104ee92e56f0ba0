package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice/appointmentservicetest"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

type fixture struct {
	fake  *appointmentservicetest.Fake
	store *appointments.Store
	calc  *Calculator
}

func newFixture(t *testing.T, seed func(f *appointmentservicetest.Fake)) *fixture {
	t.Helper()

	fake := appointmentservicetest.NewFake()
	if seed != nil {
		seed(fake)
	}

	log := logger.NewNop()
	store := appointments.NewStore(fake, nil, log)
	require.NoError(t, store.Refresh(context.Background(), testDate))

	return &fixture{
		fake:  fake,
		store: store,
		calc:  NewCalculator(catalog.Default(), store, fake, log),
	}
}

func TestCompute_FullSlot(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotMorning4, "Ann", domain.StatusPending)
		fake.Add(testDate, catalog.SlotMorning4, "Bob", domain.StatusCompleted)
	})

	snap, err := f.calc.Compute(context.Background(), testDate, catalog.SlotMorning4)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Capacity)
	assert.Equal(t, 2, snap.Booked)
	assert.Equal(t, 0, snap.Available)
	assert.True(t, snap.IsFull())
	assert.False(t, snap.ValidFromServer)
	assert.Nil(t, snap.EstimatedNextTime)
	assert.Len(t, snap.Appointments, 2)
}

func TestCompute_EmptySlot(t *testing.T) {
	f := newFixture(t, nil)

	snap, err := f.calc.Compute(context.Background(), testDate, catalog.SlotMorning4)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Booked)
	assert.Equal(t, 2, snap.Available)
	assert.Equal(t, "Morning Slot 4", snap.DisplayName)
	assert.True(t, snap.ValidFromServer)
	require.NotNil(t, snap.EstimatedNextTime)
	assert.Equal(t, "1:30 PM", *snap.EstimatedNextTime)
	assert.False(t, snap.Degraded)
}

func TestCompute_RemoteDecisionDoesNotOverwriteDisplay(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotMorning4, "Ann", domain.StatusPending)
	})
	invalid := false
	f.fake.ForceValid = &invalid

	snap, err := f.calc.Compute(context.Background(), testDate, catalog.SlotMorning4)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.Available)
	assert.Equal(t, 1, snap.Booked)
	assert.False(t, snap.ValidFromServer)
	assert.False(t, snap.Degraded)
}

func TestCompute_DegradedWhenValidationFails(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotMorning1, "Ann", domain.StatusPending)
	})
	f.fake.ValidateErr = errors.New("connection reset")

	snap, err := f.calc.Compute(context.Background(), testDate, catalog.SlotMorning1)
	require.NoError(t, err)

	assert.True(t, snap.Degraded)
	assert.False(t, snap.ValidFromServer)
	assert.Nil(t, snap.EstimatedNextTime)
	assert.Equal(t, 1, snap.Booked)
	assert.Equal(t, 3, snap.Available)
}

func TestCompute_UnknownSlot(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.calc.Compute(context.Background(), testDate, "9:00 PM - 10:00 PM")
	assert.ErrorIs(t, err, catalog.ErrUnknownSlot)
	assert.Equal(t, 0, f.fake.Calls(appointmentservicetest.OpValidate))
}

func TestCompute_Idempotent(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotEvening1, "Ann", domain.StatusPending)
		fake.Add(testDate, catalog.SlotEvening1, "Bob", domain.StatusPending)
	})

	first, err := f.calc.Compute(context.Background(), testDate, catalog.SlotEvening1)
	require.NoError(t, err)
	second, err := f.calc.Compute(context.Background(), testDate, catalog.SlotEvening1)
	require.NoError(t, err)

	assert.Equal(t, first.Booked, second.Booked)
	assert.Equal(t, first.Available, second.Available)
	assert.Equal(t, first.Capacity, second.Capacity)
}

func TestOverview(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotMorning1, "Ann", domain.StatusPending)
		fake.Add(testDate, catalog.SlotMorning1, "Bob", domain.StatusCompleted)
		fake.Add(testDate, catalog.SlotMorning1, "Cid", domain.StatusConfirmed)
		fake.Add(testDate, catalog.SlotEvening2, "Dan", domain.StatusPending)
		fake.Add(testDate, catalog.SlotEvening2, "Eve", domain.StatusPending)
		fake.Add(testDate, catalog.SlotEvening2, "Fay", domain.StatusPending)
	})

	overview := f.calc.Overview()

	assert.Equal(t, testDate, overview.Date)
	assert.Equal(t, 6, overview.Total)
	require.Len(t, overview.Slots, 6)

	morning := overview.Slots[0]
	assert.Equal(t, catalog.SlotMorning1, morning.Slot.ID)
	assert.Equal(t, 3, morning.Booked)
	assert.Equal(t, 1, morning.Pending)
	assert.Equal(t, 1, morning.Completed)
	assert.Equal(t, 1, morning.Available)

	evening := overview.Slots[5]
	assert.Equal(t, catalog.SlotEvening2, evening.Slot.ID)
	assert.Equal(t, 3, evening.Booked)
	assert.Equal(t, 0, evening.Available)

	sum := 0
	for _, s := range overview.Slots {
		sum += s.Booked
	}
	assert.Equal(t, f.store.Count(), sum)
}

func TestCompute_CacheHoldsAnotherDate(t *testing.T) {
	f := newFixture(t, func(fake *appointmentservicetest.Fake) {
		fake.Add(testDate, catalog.SlotMorning4, "Ann", domain.StatusPending)
		fake.Add(testDate, catalog.SlotMorning4, "Bob", domain.StatusPending)
	})
	nextDay := testDate.AddDate(0, 0, 1)

	snap, err := f.calc.Compute(context.Background(), nextDay, catalog.SlotMorning4)
	require.NoError(t, err)

	assert.True(t, snap.NotLoaded)
	assert.Equal(t, nextDay, snap.Date)
	assert.Equal(t, 0, snap.Booked)
	assert.Empty(t, snap.Appointments)
	assert.True(t, snap.ValidFromServer)
}

func TestCompute_SameDateIsLoaded(t *testing.T) {
	f := newFixture(t, nil)

	snap, err := f.calc.Compute(context.Background(), testDate.Add(15*time.Hour), catalog.SlotMorning1)
	require.NoError(t, err)
	assert.False(t, snap.NotLoaded)
}
