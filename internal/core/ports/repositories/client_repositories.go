package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// ClientRepository defines persistence operations for invoicing clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
}
