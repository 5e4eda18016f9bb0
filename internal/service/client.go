// Package service contains the collection services sitting between the HTTP
// layer and the persistence adapters. Each operation validates its input,
// delegates to the store, and returns the store's authoritative result; the
// in-memory view held by callers is only refreshed from these return values,
// never updated optimistically.
package service

import (
	"context"
	"log/slog"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/store"
	"github.com/salonbook/salonbook-server/internal/validation"
)

// ClientService orchestrates client collection operations.
type ClientService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewClientService creates a new client service.
func NewClientService(store store.Store, validator *validation.Validator, logger *slog.Logger) *ClientService {
	return &ClientService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns all clients ordered by last name, then first name.
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.store.ListClients(ctx)
}

// Create registers a new client. The draft is rejected before the store is
// touched if required fields are absent; the id is assigned by the store.
func (s *ClientService) Create(ctx context.Context, draft domain.ClientDraft) (*domain.Client, error) {
	if err := s.validator.Validate(draft); err != nil {
		return nil, err
	}

	client, err := s.store.CreateClient(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("client created", "client_id", client.ID)
	return client, nil
}

// Remove deletes a client and, through the store's cascade, every appointment
// referencing it.
func (s *ClientService) Remove(ctx context.Context, id string) error {
	if err := s.store.DeleteClient(ctx, id); err != nil {
		return err
	}

	s.logger.Info("client removed", "client_id", id)
	return nil
}
