package api

import (
	"github.com/salonbook/salonbook-server/internal/service"
)

// Services groups the collection services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Client      *service.ClientService
	Catalog     *service.CatalogService
	Appointment *service.AppointmentService
}
