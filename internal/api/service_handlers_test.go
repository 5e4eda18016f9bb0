package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService_ReturnsFullRecord(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/services", map[string]any{
		"name":     "Haircut",
		"duration": 45,
		"color":    "#e91e63",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var svc ServiceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &svc))
	assert.NotEmpty(t, svc.ID)
	assert.Equal(t, "Haircut", svc.Name)
	assert.Equal(t, 45, svc.Duration)
	assert.Equal(t, "#e91e63", svc.Color)
}

func TestCreateService_RejectsNonPositiveDuration(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/services", map[string]any{
		"name":     "Haircut",
		"duration": 0,
		"color":    "#e91e63",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "VALIDATION", apiErr.Code)
}

func TestListServices_SortedByName(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.createService(t, "Manicure")
	ts.createService(t, "Balayage")
	ts.createService(t, "Haircut")

	resp := ts.api.Get("/services")
	require.Equal(t, http.StatusOK, resp.Code)

	var services []ServiceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &services))
	require.Len(t, services, 3)
	assert.Equal(t, "Balayage", services[0].Name)
	assert.Equal(t, "Haircut", services[1].Name)
	assert.Equal(t, "Manicure", services[2].Name)
}

func TestDeleteService(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	serviceID := ts.createService(t, "Haircut")

	resp := ts.api.Delete("/services/" + serviceID)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Delete("/services/" + serviceID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteService_AppointmentKeepsReference(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	clientID := ts.createClient(t)
	serviceID := ts.createService(t, "Haircut")

	resp := ts.api.Post("/appointments", map[string]any{
		"clientId": clientID,
		"date":     "2026-03-14T09:30",
		"services": []string{serviceID},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Delete("/services/" + serviceID)
	require.Equal(t, http.StatusNoContent, resp.Code)

	// Under the local backend the appointment keeps the dangling id.
	resp = ts.api.Get("/appointments")
	require.Equal(t, http.StatusOK, resp.Code)

	var appointments []AppointmentResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, []string{serviceID}, appointments[0].Services)
}
