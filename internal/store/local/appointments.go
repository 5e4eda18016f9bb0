package local

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// ListAppointments returns all appointments ordered by date ascending.
func (s *Store) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var appointments []*domain.Appointment
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		appointments, err = loadCollection[domain.Appointment](txn, keyAppointments)
		return err
	})
	if err != nil {
		return nil, err
	}

	if appointments == nil {
		appointments = []*domain.Appointment{}
	}
	domain.SortAppointments(appointments)
	return appointments, nil
}

// CreateAppointment appends a new appointment, assigning its ID. The client
// must exist at creation time; service ids are stored as given, including ids
// that no longer resolve.
func (s *Store) CreateAppointment(ctx context.Context, draft domain.AppointmentDraft) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	appointmentID, err := id.Generate(id.PrefixAppointment)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	serviceIDs := draft.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}

	appointment := &domain.Appointment{
		ID:         appointmentID,
		ClientID:   draft.ClientID,
		Date:       draft.Date,
		ServiceIDs: serviceIDs,
		IsPaid:     draft.IsPaid,
		Notes:      draft.Notes,
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		clients, err := loadCollection[domain.Client](txn, keyClients)
		if err != nil {
			return err
		}
		if !clientExists(clients, draft.ClientID) {
			return store.ErrIntegrity.WithMessage("client does not exist")
		}

		appointments, err := loadCollection[domain.Appointment](txn, keyAppointments)
		if err != nil {
			return err
		}
		return saveCollection(txn, keyAppointments, append(appointments, appointment))
	})
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

// SetAppointmentPaid updates the payment flag of one appointment, leaving
// every other field untouched.
func (s *Store) SetAppointmentPaid(ctx context.Context, appointmentID string, isPaid bool) (*domain.Appointment, error) {
	return s.patchAppointment(ctx, appointmentID, func(a *domain.Appointment) {
		a.IsPaid = isPaid
	})
}

// SetAppointmentNotes updates the notes of one appointment, leaving every
// other field untouched.
func (s *Store) SetAppointmentNotes(ctx context.Context, appointmentID string, notes string) (*domain.Appointment, error) {
	return s.patchAppointment(ctx, appointmentID, func(a *domain.Appointment) {
		a.Notes = notes
	})
}

// DeleteAppointment removes one appointment.
func (s *Store) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		appointments, err := loadCollection[domain.Appointment](txn, keyAppointments)
		if err != nil {
			return err
		}

		kept := appointments[:0:0]
		for _, a := range appointments {
			if a.ID != appointmentID {
				kept = append(kept, a)
			}
		}
		if len(kept) == len(appointments) {
			return store.ErrNotFound.WithMessage("appointment not found")
		}
		return saveCollection(txn, keyAppointments, kept)
	})
}

// patchAppointment applies mutate to one appointment inside a single
// read-transform-write transaction and returns the updated record.
func (s *Store) patchAppointment(ctx context.Context, appointmentID string, mutate func(*domain.Appointment)) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated *domain.Appointment
	err := s.db.Update(func(txn *badger.Txn) error {
		appointments, err := loadCollection[domain.Appointment](txn, keyAppointments)
		if err != nil {
			return err
		}

		for _, a := range appointments {
			if a.ID == appointmentID {
				mutate(a)
				updated = a
				break
			}
		}
		if updated == nil {
			return store.ErrNotFound.WithMessage("appointment not found")
		}
		return saveCollection(txn, keyAppointments, appointments)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func clientExists(clients []*domain.Client, clientID string) bool {
	for _, c := range clients {
		if c.ID == clientID {
			return true
		}
	}
	return false
}
