package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// CompanyService manages the company's cash settings
type CompanyService struct {
	repo *repository.Repository
	log  *logrus.Logger
}

// NewCompanyService initializes a new company service
func NewCompanyService(repo *repository.Repository, log *logrus.Logger) *CompanyService {
	return &CompanyService{repo: repo, log: log}
}

// GetSettings retrieves the company record
func (s *CompanyService) GetSettings(ctx context.Context, companyID string) (*models.Company, error) {
	return s.repo.FindCompanyByID(ctx, companyID)
}

// UpdateSettings sets the bank balance and danger line used by every forecast
func (s *CompanyService) UpdateSettings(ctx context.Context, companyID string, bankBalance, dangerLine decimal.Decimal) (*models.Company, error) {
	if err := s.repo.UpdateCompanySettings(ctx, companyID, bankBalance, dangerLine); err != nil {
		return nil, err
	}
	s.log.Infof("Company %s settings updated", companyID)
	return s.repo.FindCompanyByID(ctx, companyID)
}
