package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/store"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "salonbook-sqlite-test-*")
	require.NoError(t, err)

	s, err := Open(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func createTestClient(t *testing.T, s *Store, firstName, lastName string) *domain.Client {
	t.Helper()

	client, err := s.CreateClient(context.Background(), domain.ClientDraft{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     "600 100 200",
	})
	require.NoError(t, err)
	return client
}

func createTestService(t *testing.T, s *Store, name string) *domain.Service {
	t.Helper()

	svc, err := s.CreateService(context.Background(), domain.ServiceDraft{
		Name:     name,
		Duration: 45,
		Color:    "#e91e63",
	})
	require.NoError(t, err)
	return svc
}

// Clients.

func TestListClients_EmptyStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	clients, err := s.ListClients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestCreateAndListClients_Sorted(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	createTestClient(t, s, "Zofia", "Nowak")
	createTestClient(t, s, "Anna", "Kowalska")
	createTestClient(t, s, "Adam", "Nowak")

	clients, err := s.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Kowalska", clients[0].LastName)
	assert.Equal(t, "Adam", clients[1].FirstName)
	assert.Equal(t, "Zofia", clients[2].FirstName)
}

func TestDeleteClient_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	err := s.DeleteClient(context.Background(), "cli-nonexistent")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteClient_CascadesAppointments(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	anna := createTestClient(t, s, "Anna", "Kowalska")
	zofia := createTestClient(t, s, "Zofia", "Nowak")
	svc := createTestService(t, s, "Haircut")

	_, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID:   anna.ID,
		Date:       domain.NewLocalTime(2026, time.March, 14, 9, 30),
		ServiceIDs: []string{svc.ID},
	})
	require.NoError(t, err)

	kept, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: zofia.ID,
		Date:     domain.NewLocalTime(2026, time.March, 14, 14, 0),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteClient(ctx, anna.ID))

	// Anna's appointment and its join rows are gone with her.
	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, kept.ID, appointments[0].ID)
}

// Services.

func TestDeleteService_CascadesJoinRowsOnly(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	anna := createTestClient(t, s, "Anna", "Kowalska")
	haircut := createTestService(t, s, "Haircut")
	manicure := createTestService(t, s, "Manicure")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID:   anna.ID,
		Date:       domain.NewLocalTime(2026, time.March, 14, 9, 30),
		ServiceIDs: []string{haircut.ID, manicure.ID},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteService(ctx, haircut.ID))

	// The appointment survives; the deleted service's join row does not.
	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, apt.ID, appointments[0].ID)
	assert.Equal(t, []string{manicure.ID}, appointments[0].ServiceIDs)
}

func TestDeleteService_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	err := s.DeleteService(context.Background(), "srv-nonexistent")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Appointments.

func TestCreateAppointment_UnknownClient(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.CreateAppointment(context.Background(), domain.AppointmentDraft{
		ClientID: "cli-nonexistent",
		Date:     domain.NewLocalTime(2026, time.March, 14, 9, 30),
	})
	assert.ErrorIs(t, err, store.ErrIntegrity)
}

func TestCreateAppointment_UnknownServiceRollsBack(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	_, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID:   anna.ID,
		Date:       domain.NewLocalTime(2026, time.March, 14, 9, 30),
		ServiceIDs: []string{"srv-nonexistent"},
	})
	assert.ErrorIs(t, err, store.ErrIntegrity)

	// The whole creation rolled back; no half-created appointment remains.
	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestCreateAppointment_DuplicateServiceIDsStoredOnce(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")
	svc := createTestService(t, s, "Haircut")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID:   anna.ID,
		Date:       domain.NewLocalTime(2026, time.March, 14, 9, 30),
		ServiceIDs: []string{svc.ID, svc.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{svc.ID}, apt.ServiceIDs)
}

func TestListAppointments_ZeroServiceAppointmentAppearsOnce(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     domain.NewLocalTime(2026, time.March, 14, 9, 30),
	})
	require.NoError(t, err)

	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, apt.ID, appointments[0].ID)
	assert.NotNil(t, appointments[0].ServiceIDs)
	assert.Empty(t, appointments[0].ServiceIDs)
}

func TestListAppointments_SortedByDate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	later, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     domain.NewLocalTime(2026, time.November, 2, 8, 0),
	})
	require.NoError(t, err)

	earlier, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     domain.NewLocalTime(2026, time.March, 14, 9, 30),
	})
	require.NoError(t, err)

	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, earlier.ID, appointments[0].ID)
	assert.Equal(t, later.ID, appointments[1].ID)
}

func TestSetAppointmentPaid_PartialUpdate(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")
	svc := createTestService(t, s, "Haircut")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID:   anna.ID,
		Date:       domain.NewLocalTime(2026, time.March, 14, 9, 30),
		ServiceIDs: []string{svc.ID},
		Notes:      "first visit",
	})
	require.NoError(t, err)
	require.False(t, apt.IsPaid)

	updated, err := s.SetAppointmentPaid(ctx, apt.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	assert.Equal(t, "first visit", updated.Notes)
	assert.Equal(t, []string{svc.ID}, updated.ServiceIDs)
	assert.True(t, updated.Date.Equal(apt.Date.Time))
}

func TestSetAppointmentNotes(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     domain.NewLocalTime(2026, time.March, 14, 9, 30),
	})
	require.NoError(t, err)

	updated, err := s.SetAppointmentNotes(ctx, apt.ID, "allergic to ammonia")
	require.NoError(t, err)
	assert.Equal(t, "allergic to ammonia", updated.Notes)
}

func TestSetAppointmentPaid_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.SetAppointmentPaid(context.Background(), "apt-nonexistent", true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     domain.NewLocalTime(2026, time.March, 14, 9, 30),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAppointment(ctx, apt.ID))

	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)

	err = s.DeleteAppointment(ctx, apt.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDateRoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	anna := createTestClient(t, s, "Anna", "Kowalska")

	date := domain.NewLocalTime(2026, time.March, 14, 9, 30)
	apt, err := s.CreateAppointment(ctx, domain.AppointmentDraft{
		ClientID: anna.ID,
		Date:     date,
	})
	require.NoError(t, err)

	appointments, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, apt.ID, appointments[0].ID)
	assert.Equal(t, "2026-03-14T09:30", appointments[0].Date.Format(domain.Layout))
}
