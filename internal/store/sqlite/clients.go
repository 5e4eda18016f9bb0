package sqlite

import (
	"context"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// clientColumns is the ordered list of columns selected in client queries.
// Must match the scan order in scanClient.
const clientColumns = `id, first_name, last_name, phone`

// scanClient scans a sql.Row (or sql.Rows via its Scan method) into a domain.Client.
func scanClient(scanner interface{ Scan(dest ...any) error }) (*domain.Client, error) {
	var c domain.Client
	if err := scanner.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients returns all clients ordered by last name, then first name.
func (s *Store) ListClients(ctx context.Context) ([]*domain.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("query clients").WithCause(err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, store.ErrPersistence.WithMessage("scan client").WithCause(err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ErrPersistence.WithMessage("iterate clients").WithCause(err)
	}
	return clients, nil
}

// CreateClient inserts a new client, assigning its ID.
func (s *Store) CreateClient(ctx context.Context, draft domain.ClientDraft) (*domain.Client, error) {
	clientID, err := id.Generate(id.PrefixClient)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO clients (id, first_name, last_name, phone)
		VALUES (?, ?, ?, ?)`,
		clientID, draft.FirstName, draft.LastName, draft.Phone,
	)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("insert client").WithCause(err)
	}

	return &domain.Client{
		ID:        clientID,
		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Phone:     draft.Phone,
	}, nil
}

// DeleteClient removes a client. Dependent appointments (and their join rows)
// go with it via ON DELETE CASCADE.
func (s *Store) DeleteClient(ctx context.Context, clientID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, clientID)
	if err != nil {
		return store.ErrPersistence.WithMessage("delete client").WithCause(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.ErrPersistence.WithMessage("rows affected").WithCause(err)
	}
	if n == 0 {
		return store.ErrNotFound.WithMessage("client not found")
	}
	return nil
}
