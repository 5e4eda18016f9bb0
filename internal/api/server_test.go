package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salonbook-server/internal/service"
	"github.com/salonbook/salonbook-server/internal/store/local"
	"github.com/salonbook/salonbook-server/internal/validation"
)

// testServer wraps the API server with a humatest client and a temp-dir store.
type testServer struct {
	*Server
	api     humatest.TestAPI
	cleanup func()
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "salonbook-api-test-*")
	require.NoError(t, err)

	st, err := local.Open(tmpDir, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := validation.New()

	services := &Services{
		Client:      service.NewClientService(st, validator, logger),
		Catalog:     service.NewCatalogService(st, validator, logger),
		Appointment: service.NewAppointmentService(st, validator, logger),
	}

	router := chi.NewRouter()
	humaConfig := huma.DefaultConfig("SalonBook API Test", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerClientRoutes()
	s.registerServiceRoutes()
	s.registerAppointmentRoutes()

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{
		Server:  s,
		api:     humatest.Wrap(t, api),
		cleanup: cleanup,
	}
}

// createClient books a client through the API and returns its id.
func (ts *testServer) createClient(t *testing.T) string {
	t.Helper()

	resp := ts.api.Post("/clients", map[string]any{
		"firstName": "Anna",
		"lastName":  "Kowalska",
		"phone":     "600 100 200",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "create client failed: %s", resp.Body.String())

	var client ClientResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &client))
	return client.ID
}

// createService adds a catalog service through the API and returns its id.
func (ts *testServer) createService(t *testing.T, name string) string {
	t.Helper()

	resp := ts.api.Post("/services", map[string]any{
		"name":     name,
		"duration": 45,
		"color":    "#e91e63",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "create service failed: %s", resp.Body.String())

	var svc ServiceResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &svc))
	return svc.ID
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	require.Equal(t, "healthy", health.Status)
	require.Contains(t, health.Components, "store")
}
