package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/salonbook/salonbook-server/internal/domain"
	domainerrors "github.com/salonbook/salonbook-server/internal/errors"
)

func (s *Server) registerAppointmentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAppointments",
		Method:      http.MethodGet,
		Path:        "/appointments",
		Summary:     "List appointments",
		Description: "Returns all appointments ordered by date ascending",
		Tags:        []string{"Appointments"},
	}, s.handleListAppointments)

	huma.Register(s.api, huma.Operation{
		OperationID: "listAppointmentsOnDay",
		Method:      http.MethodGet,
		Path:        "/appointments/day/{date}",
		Summary:     "List appointments on a day",
		Description: "Returns the appointments on one calendar day ordered by time of day",
		Tags:        []string{"Appointments"},
	}, s.handleListAppointmentsOnDay)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createAppointment",
		Method:        http.MethodPost,
		Path:          "/appointments",
		Summary:       "Create appointment",
		Description:   "Books an appointment for an existing client",
		Tags:          []string{"Appointments"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateAppointment)

	huma.Register(s.api, huma.Operation{
		OperationID: "setAppointmentPayment",
		Method:      http.MethodPatch,
		Path:        "/appointments/{id}/payment",
		Summary:     "Set payment status",
		Description: "Updates the payment flag of one appointment",
		Tags:        []string{"Appointments"},
	}, s.handleSetAppointmentPayment)

	huma.Register(s.api, huma.Operation{
		OperationID: "setAppointmentNotes",
		Method:      http.MethodPatch,
		Path:        "/appointments/{id}/notes",
		Summary:     "Set notes",
		Description: "Replaces the notes of one appointment",
		Tags:        []string{"Appointments"},
	}, s.handleSetAppointmentNotes)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteAppointment",
		Method:        http.MethodDelete,
		Path:          "/appointments/{id}",
		Summary:       "Delete appointment",
		Description:   "Deletes one appointment",
		Tags:          []string{"Appointments"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteAppointment)
}

// === DTOs ===

// AppointmentResponse contains appointment data in API responses. Services is
// always present, empty when the appointment has none.
type AppointmentResponse struct {
	ID       string   `json:"id" doc:"Appointment ID"`
	ClientID string   `json:"clientId" doc:"Booking client ID"`
	Date     string   `json:"date" doc:"Wall-clock start, YYYY-MM-DDTHH:MM"`
	Services []string `json:"services" doc:"Service IDs booked for this appointment"`
	IsPaid   bool     `json:"isPaid" doc:"Whether the appointment has been paid"`
	Notes    string   `json:"notes" doc:"Free-form notes"`
}

// ListAppointmentsOutput wraps the appointment list for Huma.
type ListAppointmentsOutput struct {
	Body []AppointmentResponse
}

// ListAppointmentsOnDayInput contains parameters for the day query.
type ListAppointmentsOnDayInput struct {
	Date string `path:"date" doc:"Calendar day, YYYY-MM-DD"`
}

// CreateAppointmentRequest is the request body for booking an appointment.
type CreateAppointmentRequest struct {
	ClientID string   `json:"clientId,omitempty" doc:"Booking client ID"`
	Date     string   `json:"date,omitempty" doc:"Wall-clock start, YYYY-MM-DDTHH:MM"`
	Services []string `json:"services,omitempty" doc:"Service IDs to book"`
	IsPaid   bool     `json:"isPaid,omitempty" doc:"Whether the appointment is already paid"`
	Notes    string   `json:"notes,omitempty" doc:"Free-form notes"`
}

// CreateAppointmentInput wraps the create appointment request for Huma.
type CreateAppointmentInput struct {
	Body CreateAppointmentRequest
}

// AppointmentOutput wraps a single appointment response for Huma.
type AppointmentOutput struct {
	Body AppointmentResponse
}

// SetPaymentRequest is the request body for the payment flag update.
type SetPaymentRequest struct {
	IsPaid bool `json:"isPaid,omitempty" doc:"New payment status"`
}

// SetPaymentInput wraps the payment update for Huma.
type SetPaymentInput struct {
	ID   string `path:"id" doc:"Appointment ID"`
	Body SetPaymentRequest
}

// SetNotesRequest is the request body for the notes update. An empty string
// clears the notes.
type SetNotesRequest struct {
	Notes string `json:"notes,omitempty" doc:"New notes"`
}

// SetNotesInput wraps the notes update for Huma.
type SetNotesInput struct {
	ID   string `path:"id" doc:"Appointment ID"`
	Body SetNotesRequest
}

// DeleteAppointmentInput contains parameters for deleting an appointment.
type DeleteAppointmentInput struct {
	ID string `path:"id" doc:"Appointment ID"`
}

func toAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	services := a.ServiceIDs
	if services == nil {
		services = []string{}
	}
	return AppointmentResponse{
		ID:       a.ID,
		ClientID: a.ClientID,
		Date:     a.Date.Format(domain.Layout),
		Services: services,
		IsPaid:   a.IsPaid,
		Notes:    a.Notes,
	}
}

func toAppointmentResponses(appointments []*domain.Appointment) []AppointmentResponse {
	resp := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		resp[i] = toAppointmentResponse(a)
	}
	return resp
}

// === Handlers ===

func (s *Server) handleListAppointments(ctx context.Context, _ *struct{}) (*ListAppointmentsOutput, error) {
	appointments, err := s.services.Appointment.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListAppointmentsOutput{Body: toAppointmentResponses(appointments)}, nil
}

func (s *Server) handleListAppointmentsOnDay(ctx context.Context, input *ListAppointmentsOnDayInput) (*ListAppointmentsOutput, error) {
	ref, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, domainerrors.Validation("date must be a calendar day in YYYY-MM-DD form")
	}

	appointments, err := s.services.Appointment.OnDay(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &ListAppointmentsOutput{Body: toAppointmentResponses(appointments)}, nil
}

func (s *Server) handleCreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*AppointmentOutput, error) {
	draft := domain.AppointmentDraft{
		ClientID:   input.Body.ClientID,
		ServiceIDs: input.Body.Services,
		IsPaid:     input.Body.IsPaid,
		Notes:      input.Body.Notes,
	}

	// An absent date stays zero so the service reports the missing field; a
	// present but malformed one is rejected here.
	if input.Body.Date != "" {
		date, err := domain.ParseLocalTime(input.Body.Date)
		if err != nil {
			return nil, domainerrors.Validation("date must be a wall-clock time in YYYY-MM-DDTHH:MM form")
		}
		draft.Date = date
	}

	appointment, err := s.services.Appointment.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &AppointmentOutput{Body: toAppointmentResponse(appointment)}, nil
}

func (s *Server) handleSetAppointmentPayment(ctx context.Context, input *SetPaymentInput) (*AppointmentOutput, error) {
	appointment, err := s.services.Appointment.SetPaymentStatus(ctx, input.ID, input.Body.IsPaid)
	if err != nil {
		return nil, err
	}
	return &AppointmentOutput{Body: toAppointmentResponse(appointment)}, nil
}

func (s *Server) handleSetAppointmentNotes(ctx context.Context, input *SetNotesInput) (*AppointmentOutput, error) {
	appointment, err := s.services.Appointment.SetNotes(ctx, input.ID, input.Body.Notes)
	if err != nil {
		return nil, err
	}
	return &AppointmentOutput{Body: toAppointmentResponse(appointment)}, nil
}

func (s *Server) handleDeleteAppointment(ctx context.Context, input *DeleteAppointmentInput) (*DeleteOutput, error) {
	if err := s.services.Appointment.Remove(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
