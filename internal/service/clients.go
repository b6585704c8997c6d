package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// ClientService manages business counterparties
type ClientService struct {
	repo *repository.Repository
}

// NewClientService initializes a new client service
func NewClientService(repo *repository.Repository) *ClientService {
	return &ClientService{repo: repo}
}

// Create registers a new client
func (s *ClientService) Create(ctx context.Context, companyID, name, clientType string) (*models.Client, error) {
	if clientType != models.ClientGeneralContractor && clientType != models.ClientSubcontractor {
		return nil, fmt.Errorf("unknown client type %q", clientType)
	}

	client := &models.Client{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      name,
		Type:      clientType,
	}
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List retrieves the company's clients
func (s *ClientService) List(ctx context.Context, companyID string) ([]models.Client, error) {
	return s.repo.ListClients(ctx, companyID)
}
