package local

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/id"
	"github.com/salonbook/salonbook-server/internal/store"
)

// ListServices returns all services ordered by name.
func (s *Store) ListServices(ctx context.Context) ([]*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var services []*domain.Service
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		services, err = loadCollection[domain.Service](txn, keyServices)
		return err
	})
	if err != nil {
		return nil, err
	}

	if services == nil {
		services = []*domain.Service{}
	}
	domain.SortServices(services)
	return services, nil
}

// CreateService appends a new service to the collection, assigning its ID.
func (s *Store) CreateService(ctx context.Context, draft domain.ServiceDraft) (*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	serviceID, err := id.Generate(id.PrefixService)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("failed to generate id").WithCause(err)
	}

	service := &domain.Service{
		ID:       serviceID,
		Name:     draft.Name,
		Duration: draft.Duration,
		Color:    draft.Color,
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		services, err := loadCollection[domain.Service](txn, keyServices)
		if err != nil {
			return err
		}
		return saveCollection(txn, keyServices, append(services, service))
	})
	if err != nil {
		return nil, err
	}

	return service, nil
}

// DeleteService removes a service. Appointments referencing it keep the
// dangling id; consumers resolve service references leniently.
func (s *Store) DeleteService(ctx context.Context, serviceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		services, err := loadCollection[domain.Service](txn, keyServices)
		if err != nil {
			return err
		}

		kept := services[:0:0]
		for _, svc := range services {
			if svc.ID != serviceID {
				kept = append(kept, svc)
			}
		}
		if len(kept) == len(services) {
			return store.ErrNotFound.WithMessage("service not found")
		}
		return saveCollection(txn, keyServices, kept)
	})
}
