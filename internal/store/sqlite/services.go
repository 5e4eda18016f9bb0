package sqlite

import (
	"context"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// serviceColumns is the ordered list of columns selected in service queries.
// Must match the scan order in scanService.
const serviceColumns = `id, name, duration, color`

// scanService scans a sql.Row (or sql.Rows via its Scan method) into a domain.Service.
func scanService(scanner interface{ Scan(dest ...any) error }) (*domain.Service, error) {
	var svc domain.Service
	if err := scanner.Scan(&svc.ID, &svc.Name, &svc.Duration, &svc.Color); err != nil {
		return nil, err
	}
	return &svc, nil
}

// ListServices returns all services ordered by name.
func (s *Store) ListServices(ctx context.Context) ([]*domain.Service, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("query services").WithCause(err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, store.ErrPersistence.WithMessage("scan service").WithCause(err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ErrPersistence.WithMessage("iterate services").WithCause(err)
	}
	return services, nil
}

// CreateService inserts a new service, assigning its ID.
func (s *Store) CreateService(ctx context.Context, draft domain.ServiceDraft) (*domain.Service, error) {
	serviceID, err := id.Generate(id.PrefixService)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO services (id, name, duration, color)
		VALUES (?, ?, ?, ?)`,
		serviceID, draft.Name, draft.Duration, draft.Color,
	)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("insert service").WithCause(err)
	}

	return &domain.Service{
		ID:       serviceID,
		Name:     draft.Name,
		Duration: draft.Duration,
		Color:    draft.Color,
	}, nil
}

// DeleteService removes a service. Join rows referencing it are removed via
// ON DELETE CASCADE; the appointments themselves are untouched.
func (s *Store) DeleteService(ctx context.Context, serviceID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, serviceID)
	if err != nil {
		return store.ErrPersistence.WithMessage("delete service").WithCause(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.ErrPersistence.WithMessage("rows affected").WithCause(err)
	}
	if n == 0 {
		return store.ErrNotFound.WithMessage("service not found")
	}
	return nil
}
