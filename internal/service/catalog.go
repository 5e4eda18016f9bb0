package service

import (
	"context"
	"log/slog"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/store"
	"github.com/salonbook/salonbook-server/internal/validation"
)

// CatalogService orchestrates the service catalog (the treatments the salon
// offers).
type CatalogService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store store.Store, validator *validation.Validator, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns all services ordered by name.
func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.store.ListServices(ctx)
}

// Create adds a service to the catalog.
func (s *CatalogService) Create(ctx context.Context, draft domain.ServiceDraft) (*domain.Service, error) {
	if err := s.validator.Validate(draft); err != nil {
		return nil, err
	}

	service, err := s.store.CreateService(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("service created", "service_id", service.ID, "name", service.Name)
	return service, nil
}

// Remove deletes a service from the catalog. Appointments are not touched;
// references to the deleted service become dangling and are resolved
// leniently by consumers.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.store.DeleteService(ctx, id); err != nil {
		return err
	}

	s.logger.Info("service removed", "service_id", id)
	return nil
}
