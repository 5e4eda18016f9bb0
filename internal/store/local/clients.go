package local

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// ListClients returns all clients ordered by last name, then first name.
func (s *Store) ListClients(ctx context.Context) ([]*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var clients []*domain.Client
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		clients, err = loadCollection[domain.Client](txn, keyClients)
		return err
	})
	if err != nil {
		return nil, err
	}

	if clients == nil {
		clients = []*domain.Client{}
	}
	domain.SortClients(clients)
	return clients, nil
}

// CreateClient appends a new client to the collection, assigning its ID.
func (s *Store) CreateClient(ctx context.Context, draft domain.ClientDraft) (*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clientID, err := id.Generate(id.PrefixClient)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	client := &domain.Client{
		ID:        clientID,
		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Phone:     draft.Phone,
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		clients, err := loadCollection[domain.Client](txn, keyClients)
		if err != nil {
			return err
		}
		return saveCollection(txn, keyClients, append(clients, client))
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient removes a client and, in the same transaction, every
// appointment referencing it. The relational backend gets this cascade from
// its foreign keys; here it is replicated manually.
func (s *Store) DeleteClient(ctx context.Context, clientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		clients, err := loadCollection[domain.Client](txn, keyClients)
		if err != nil {
			return err
		}

		kept := clients[:0:0]
		for _, c := range clients {
			if c.ID != clientID {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(clients) {
			return store.ErrNotFound.WithMessage("client not found")
		}
		if err := saveCollection(txn, keyClients, kept); err != nil {
			return err
		}

		appointments, err := loadCollection[domain.Appointment](txn, keyAppointments)
		if err != nil {
			return err
		}
		remaining := appointments[:0:0]
		for _, a := range appointments {
			if a.ClientID != clientID {
				remaining = append(remaining, a)
			}
		}
		return saveCollection(txn, keyAppointments, remaining)
	})
}
