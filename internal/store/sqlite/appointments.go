package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// ListAppointments returns all appointments ordered by date ascending, each
// carrying its full service-id set. The LEFT JOIN keeps appointments with no
// services in the result, with an empty (never nil) ServiceIDs slice.
func (s *Store) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.client_id, a.date, a.is_paid, a.notes,
		       COALESCE(GROUP_CONCAT(aps.service_id), '')
		FROM appointments a
		LEFT JOIN appointment_services aps ON aps.appointment_id = a.id
		GROUP BY a.id
		ORDER BY a.date`)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("query appointments").WithCause(err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, store.ErrPersistence.WithMessage("scan appointment").WithCause(err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ErrPersistence.WithMessage("iterate appointments").WithCause(err)
	}
	return appointments, nil
}

// CreateAppointment inserts the appointment row and one join row per service
// id inside a single transaction. Any failure rolls the whole creation back;
// a half-created appointment never persists. An unknown client or service id
// surfaces as an integrity error.
func (s *Store) CreateAppointment(ctx context.Context, draft domain.AppointmentDraft) (*domain.Appointment, error) {
	appointmentID, err := id.Generate(id.PrefixAppointment)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("begin tx").WithCause(err)
	}
	defer tx.Rollback()

	// The FK would catch a missing client too, but checking up front lets us
	// report integrity instead of a bare constraint failure.
	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, draft.ClientID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrIntegrity.WithMessage("client does not exist")
	}
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("check client").WithCause(err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO appointments (id, client_id, date, is_paid, notes)
		VALUES (?, ?, ?, ?, ?)`,
		appointmentID, draft.ClientID, formatDate(draft.Date), draft.IsPaid, draft.Notes,
	)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("insert appointment").WithCause(err)
	}

	// The join table's composite key makes duplicate ids meaningless; store
	// each service once.
	serviceIDs := dedupe(draft.ServiceIDs)
	for _, serviceID := range serviceIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id)
			VALUES (?, ?)`,
			appointmentID, serviceID,
		)
		if err != nil {
			if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
				return nil, store.ErrIntegrity.WithMessage("service does not exist")
			}
			return nil, store.ErrPersistence.WithMessage("insert appointment service").WithCause(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, store.ErrPersistence.WithMessage("commit").WithCause(err)
	}

	return &domain.Appointment{
		ID:         appointmentID,
		ClientID:   draft.ClientID,
		Date:       draft.Date,
		ServiceIDs: serviceIDs,
		IsPaid:     draft.IsPaid,
		Notes:      draft.Notes,
	}, nil
}

// SetAppointmentPaid updates the payment flag and returns the full record.
func (s *Store) SetAppointmentPaid(ctx context.Context, appointmentID string, isPaid bool) (*domain.Appointment, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE appointments SET is_paid = ? WHERE id = ?`, isPaid, appointmentID)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("update payment").WithCause(err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.getAppointment(ctx, appointmentID)
}

// SetAppointmentNotes updates the notes and returns the full record.
func (s *Store) SetAppointmentNotes(ctx context.Context, appointmentID string, notes string) (*domain.Appointment, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE appointments SET notes = ? WHERE id = ?`, notes, appointmentID)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("update notes").WithCause(err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.getAppointment(ctx, appointmentID)
}

// DeleteAppointment removes one appointment; its join rows cascade.
func (s *Store) DeleteAppointment(ctx context.Context, appointmentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, appointmentID)
	if err != nil {
		return store.ErrPersistence.WithMessage("delete appointment").WithCause(err)
	}
	return requireRow(res)
}

// getAppointment retrieves one appointment with its service-id set.
func (s *Store) getAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.client_id, a.date, a.is_paid, a.notes,
		       COALESCE(GROUP_CONCAT(aps.service_id), '')
		FROM appointments a
		LEFT JOIN appointment_services aps ON aps.appointment_id = a.id
		WHERE a.id = ?
		GROUP BY a.id`, appointmentID)

	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("appointment not found")
	}
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("scan appointment").WithCause(err)
	}
	return a, nil
}

// scanAppointment scans the aggregate appointment row shape shared by list
// and single-row queries.
func scanAppointment(scanner interface{ Scan(dest ...any) error }) (*domain.Appointment, error) {
	var (
		a        domain.Appointment
		date     string
		services string
	)
	if err := scanner.Scan(&a.ID, &a.ClientID, &date, &a.IsPaid, &a.Notes, &services); err != nil {
		return nil, err
	}

	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	a.Date = parsed

	a.ServiceIDs = []string{}
	if services != "" {
		a.ServiceIDs = strings.Split(services, ",")
	}
	return &a, nil
}

// requireRow converts a zero-row update or delete into a not-found error.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return store.ErrPersistence.WithMessage("rows affected").WithCause(err)
	}
	if n == 0 {
		return store.ErrNotFound.WithMessage("appointment not found")
	}
	return nil
}

// dedupe drops repeated service ids while keeping first-seen order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
