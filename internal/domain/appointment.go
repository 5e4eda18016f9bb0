package domain

import "slices"

// Appointment books a client for a set of services at a wall-clock time.
// ServiceIDs is the many-to-many side of the relation; under the relational
// backend it is realized as join rows, under the local backend it is stored
// inline.
type Appointment struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	Date       LocalTime `json:"date"`
	ServiceIDs []string  `json:"services"`
	IsPaid     bool      `json:"isPaid"`
	Notes      string    `json:"notes"`
}

// AppointmentDraft carries the caller-supplied fields for booking an
// appointment. ClientID must reference an existing client; the adapter
// enforces this at creation time.
type AppointmentDraft struct {
	ClientID   string    `json:"clientId" validate:"required"`
	Date       LocalTime `json:"date" validate:"required"`
	ServiceIDs []string  `json:"services"`
	IsPaid     bool      `json:"isPaid"`
	Notes      string    `json:"notes"`
}

// SortAppointments orders appointments by date ascending.
func SortAppointments(appointments []*Appointment) {
	slices.SortStableFunc(appointments, func(a, b *Appointment) int {
		return a.Date.Compare(b.Date.Time)
	})
}
