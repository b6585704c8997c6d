package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// ProjectInput carries the writable fields of a project
type ProjectInput struct {
	ClientID       string          `json:"client_id"`
	ForemanID      *string         `json:"foreman_id,omitempty"`
	Name           string          `json:"name"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	Status         string          `json:"status,omitempty"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
}

// ProjectService manages construction projects
type ProjectService struct {
	repo *repository.Repository
	log  *logrus.Logger
}

// NewProjectService initializes a new project service
func NewProjectService(repo *repository.Repository, log *logrus.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// Create registers a new project as ACTIVE
func (s *ProjectService) Create(ctx context.Context, companyID string, in ProjectInput) (*models.Project, error) {
	if _, err := s.repo.FindClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:             uuid.NewString(),
		CompanyID:      companyID,
		ClientID:       in.ClientID,
		ForemanID:      in.ForemanID,
		Name:           in.Name,
		ContractAmount: in.ContractAmount,
		Status:         models.ProjectActive,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	s.log.Infof("Project %s created for company %s", project.ID, companyID)
	return project, nil
}

// Update modifies a project's writable fields
func (s *ProjectService) Update(ctx context.Context, projectID string, in ProjectInput) (*models.Project, error) {
	project, err := s.repo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.ClientID = in.ClientID
	project.ForemanID = in.ForemanID
	project.Name = in.Name
	project.ContractAmount = in.ContractAmount
	if in.Status != "" {
		project.Status = in.Status
	}
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// FindOne retrieves a single project
func (s *ProjectService) FindOne(ctx context.Context, projectID string) (*models.Project, error) {
	return s.repo.FindProjectByID(ctx, projectID)
}

// List retrieves the company's projects with realized totals. Foremen only
// see their own projects.
func (s *ProjectService) List(ctx context.Context, companyID, userID, role string) ([]repository.ProjectWithTotals, error) {
	var foremanID *string
	if role == models.RoleForeman {
		foremanID = &userID
	}
	return s.repo.ListProjectsWithTotals(ctx, companyID, foremanID)
}
