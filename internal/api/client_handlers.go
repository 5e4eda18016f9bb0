package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/salonbook/salonbook-server/internal/domain"
)

func (s *Server) registerClientRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listClients",
		Method:      http.MethodGet,
		Path:        "/clients",
		Summary:     "List clients",
		Description: "Returns all clients ordered by last name, then first name",
		Tags:        []string{"Clients"},
	}, s.handleListClients)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createClient",
		Method:        http.MethodPost,
		Path:          "/clients",
		Summary:       "Create client",
		Description:   "Registers a new client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateClient)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteClient",
		Method:        http.MethodDelete,
		Path:          "/clients/{id}",
		Summary:       "Delete client",
		Description:   "Deletes a client and all appointments booked for them",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteClient)
}

// === DTOs ===

// ClientResponse contains client data in API responses.
type ClientResponse struct {
	ID        string `json:"id" doc:"Client ID"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
	Phone     string `json:"phone" doc:"Phone number, free-form"`
}

// ListClientsOutput wraps the client list for Huma.
type ListClientsOutput struct {
	Body []ClientResponse
}

// CreateClientRequest is the request body for creating a client.
// Fields are optional at the schema level; required-field checks run in the
// service layer so missing input reports VALIDATION rather than a schema error.
type CreateClientRequest struct {
	FirstName string `json:"firstName,omitempty" doc:"First name"`
	LastName  string `json:"lastName,omitempty" doc:"Last name"`
	Phone     string `json:"phone,omitempty" doc:"Phone number, free-form"`
}

// CreateClientInput wraps the create client request for Huma.
type CreateClientInput struct {
	Body CreateClientRequest
}

// ClientOutput wraps a single client response for Huma.
type ClientOutput struct {
	Body ClientResponse
}

// DeleteClientInput contains parameters for deleting a client.
type DeleteClientInput struct {
	ID string `path:"id" doc:"Client ID"`
}

// DeleteOutput is the empty body for delete responses.
type DeleteOutput struct{}

func toClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}
}

// === Handlers ===

func (s *Server) handleListClients(ctx context.Context, _ *struct{}) (*ListClientsOutput, error) {
	clients, err := s.services.Client.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ClientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toClientResponse(c)
	}

	return &ListClientsOutput{Body: resp}, nil
}

func (s *Server) handleCreateClient(ctx context.Context, input *CreateClientInput) (*ClientOutput, error) {
	client, err := s.services.Client.Create(ctx, domain.ClientDraft{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Phone:     input.Body.Phone,
	})
	if err != nil {
		return nil, err
	}

	return &ClientOutput{Body: toClientResponse(client)}, nil
}

func (s *Server) handleDeleteClient(ctx context.Context, input *DeleteClientInput) (*DeleteOutput, error) {
	if err := s.services.Client.Remove(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
