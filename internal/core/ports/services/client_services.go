package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// ClientSvcFacade defines operations for billable clients.
type ClientSvcFacade interface {
	// CreateClient persists a new client. Restricted by client:create.
	CreateClient(ctx context.Context, actor domain.Actor, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient edits an existing client's contact details.
	UpdateClient(ctx context.Context, actor domain.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// GetClientByID retrieves a specific client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]domain.Client, error)
}
