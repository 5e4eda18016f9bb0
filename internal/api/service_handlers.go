package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/salonbook/salonbook-server/internal/domain"
)

func (s *Server) registerServiceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listServices",
		Method:      http.MethodGet,
		Path:        "/services",
		Summary:     "List services",
		Description: "Returns the service catalog ordered by name",
		Tags:        []string{"Services"},
	}, s.handleListServices)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createService",
		Method:        http.MethodPost,
		Path:          "/services",
		Summary:       "Create service",
		Description:   "Adds a service to the catalog",
		Tags:          []string{"Services"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateService)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteService",
		Method:        http.MethodDelete,
		Path:          "/services/{id}",
		Summary:       "Delete service",
		Description:   "Removes a service from the catalog; existing appointments are not modified",
		Tags:          []string{"Services"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteService)
}

// === DTOs ===

// ServiceResponse contains service catalog data in API responses.
type ServiceResponse struct {
	ID       string `json:"id" doc:"Service ID"`
	Name     string `json:"name" doc:"Service name"`
	Duration int    `json:"duration" doc:"Duration in minutes"`
	Color    string `json:"color" doc:"Display color"`
}

// ListServicesOutput wraps the service list for Huma.
type ListServicesOutput struct {
	Body []ServiceResponse
}

// CreateServiceRequest is the request body for creating a service.
type CreateServiceRequest struct {
	Name     string `json:"name,omitempty" doc:"Service name"`
	Duration int    `json:"duration,omitempty" doc:"Duration in minutes, must be positive"`
	Color    string `json:"color,omitempty" doc:"Display color"`
}

// CreateServiceInput wraps the create service request for Huma.
type CreateServiceInput struct {
	Body CreateServiceRequest
}

// ServiceOutput wraps a single service response for Huma.
type ServiceOutput struct {
	Body ServiceResponse
}

// DeleteServiceInput contains parameters for deleting a service.
type DeleteServiceInput struct {
	ID string `path:"id" doc:"Service ID"`
}

func toServiceResponse(sv *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       sv.ID,
		Name:     sv.Name,
		Duration: sv.Duration,
		Color:    sv.Color,
	}
}

// === Handlers ===

func (s *Server) handleListServices(ctx context.Context, _ *struct{}) (*ListServicesOutput, error) {
	services, err := s.services.Catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ServiceResponse, len(services))
	for i, sv := range services {
		resp[i] = toServiceResponse(sv)
	}

	return &ListServicesOutput{Body: resp}, nil
}

func (s *Server) handleCreateService(ctx context.Context, input *CreateServiceInput) (*ServiceOutput, error) {
	sv, err := s.services.Catalog.Create(ctx, domain.ServiceDraft{
		Name:     input.Body.Name,
		Duration: input.Body.Duration,
		Color:    input.Body.Color,
	})
	if err != nil {
		return nil, err
	}

	return &ServiceOutput{Body: toServiceResponse(sv)}, nil
}

func (s *Server) handleDeleteService(ctx context.Context, input *DeleteServiceInput) (*DeleteOutput, error) {
	if err := s.services.Catalog.Remove(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
