// Package store defines the persistence interface for the salonbook server.
package store

import (
	"context"

	"github.com/salonbook/salonbook-server/internal/domain"
)

// Store defines the interface for all persistence operations. Two backends
// implement it: local (badger, whole-collection blobs) and sqlite (normalized
// tables with a join table). Identifiers are assigned by the backend at
// creation time and are immutable thereafter.
type Store interface {
	// Lifecycle
	Close() error

	// Clients
	ListClients(ctx context.Context) ([]*domain.Client, error)
	CreateClient(ctx context.Context, draft domain.ClientDraft) (*domain.Client, error)
	// DeleteClient removes the client and every appointment referencing it.
	DeleteClient(ctx context.Context, id string) error

	// Services
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateService(ctx context.Context, draft domain.ServiceDraft) (*domain.Service, error)
	// DeleteService does not cascade to appointments; see backend notes on
	// dangling references.
	DeleteService(ctx context.Context, id string) error

	// Appointments
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
	CreateAppointment(ctx context.Context, draft domain.AppointmentDraft) (*domain.Appointment, error)
	SetAppointmentPaid(ctx context.Context, id string, isPaid bool) (*domain.Appointment, error)
	SetAppointmentNotes(ctx context.Context, id string, notes string) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
