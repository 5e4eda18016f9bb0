package service

import (
	"context"
	"log/slog"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/store"
	"github.com/salonbook/salonbook-server/internal/validation"
)

// AppointmentService orchestrates appointment collection operations,
// including the narrow partial updates and the day-bucket query.
type AppointmentService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(store store.Store, validator *validation.Validator, logger *slog.Logger) *AppointmentService {
	return &AppointmentService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns all appointments ordered by date ascending.
func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.store.ListAppointments(ctx)
}

// OnDay returns the appointments on ref's calendar day, ordered by time of
// day ascending. A day with no appointments yields an empty result.
func (s *AppointmentService) OnDay(ctx context.Context, ref domain.LocalTime) ([]*domain.Appointment, error) {
	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return domain.OnDay(appointments, ref), nil
}

// Create books an appointment. The draft is rejected before the store is
// touched if required fields are absent; referential checks are the store's.
func (s *AppointmentService) Create(ctx context.Context, draft domain.AppointmentDraft) (*domain.Appointment, error) {
	if err := s.validator.Validate(draft); err != nil {
		return nil, err
	}

	appointment, err := s.store.CreateAppointment(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment created",
		"appointment_id", appointment.ID,
		"client_id", appointment.ClientID,
		"date", appointment.Date.String(),
	)
	return appointment, nil
}

// SetPaymentStatus flips the payment flag of one appointment without the
// caller resending the full record.
func (s *AppointmentService) SetPaymentStatus(ctx context.Context, id string, isPaid bool) (*domain.Appointment, error) {
	appointment, err := s.store.SetAppointmentPaid(ctx, id, isPaid)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment payment updated", "appointment_id", id, "is_paid", isPaid)
	return appointment, nil
}

// SetNotes replaces the notes of one appointment without the caller
// resending the full record.
func (s *AppointmentService) SetNotes(ctx context.Context, id string, notes string) (*domain.Appointment, error) {
	appointment, err := s.store.SetAppointmentNotes(ctx, id, notes)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment notes updated", "appointment_id", id)
	return appointment, nil
}

// Remove deletes one appointment.
func (s *AppointmentService) Remove(ctx context.Context, id string) error {
	if err := s.store.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	s.logger.Info("appointment removed", "appointment_id", id)
	return nil
}
