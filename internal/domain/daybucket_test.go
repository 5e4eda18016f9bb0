package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnDay_FiltersAndOrders(t *testing.T) {
	appointments := []*Appointment{
		{ID: "apt-1", Date: NewLocalTime(2026, time.March, 14, 14, 0)},
		{ID: "apt-2", Date: NewLocalTime(2026, time.March, 15, 10, 0)},
		{ID: "apt-3", Date: NewLocalTime(2026, time.March, 14, 9, 30)},
	}

	day := OnDay(appointments, NewLocalTime(2026, time.March, 14, 0, 0))

	require.Len(t, day, 2)
	assert.Equal(t, "apt-3", day[0].ID)
	assert.Equal(t, "apt-1", day[1].ID)
}

func TestOnDay_RefTimeOfDayIrrelevant(t *testing.T) {
	appointments := []*Appointment{
		{ID: "apt-1", Date: NewLocalTime(2026, time.March, 14, 9, 30)},
	}

	for _, ref := range []LocalTime{
		NewLocalTime(2026, time.March, 14, 0, 0),
		NewLocalTime(2026, time.March, 14, 12, 0),
		NewLocalTime(2026, time.March, 14, 23, 59),
	} {
		day := OnDay(appointments, ref)
		assert.Len(t, day, 1)
	}
}

func TestOnDay_EmptyDayIsEmptyNotNil(t *testing.T) {
	appointments := []*Appointment{
		{ID: "apt-1", Date: NewLocalTime(2026, time.March, 14, 9, 30)},
	}

	day := OnDay(appointments, NewLocalTime(2026, time.April, 1, 0, 0))
	assert.NotNil(t, day)
	assert.Empty(t, day)
}

func TestSortAppointments_ByDateAscending(t *testing.T) {
	appointments := []*Appointment{
		{ID: "apt-1", Date: NewLocalTime(2026, time.March, 15, 8, 0)},
		{ID: "apt-2", Date: NewLocalTime(2026, time.March, 14, 14, 0)},
		{ID: "apt-3", Date: NewLocalTime(2026, time.March, 14, 9, 30)},
	}

	SortAppointments(appointments)

	assert.Equal(t, "apt-3", appointments[0].ID)
	assert.Equal(t, "apt-2", appointments[1].ID)
	assert.Equal(t, "apt-1", appointments[2].ID)
}
