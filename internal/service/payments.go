package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
	"github.com/genbahq/cashsignal/internal/utils/email"
)

// CreatePaymentRequestInput carries the fields of a new payment request
type CreatePaymentRequestInput struct {
	ProjectID   string          `json:"project_id"`
	ClientID    string          `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DesiredDate time.Time       `json:"desired_date"`
	Note        string          `json:"note"`
}

// PaymentService handles the payment request lifecycle
type PaymentService struct {
	repo      *repository.Repository
	previewer *forecast.Previewer
	mailer    *email.Sender
	log       *logrus.Logger
}

// NewPaymentService initializes a new payment service
func NewPaymentService(repo *repository.Repository, previewer *forecast.Previewer, mailer *email.Sender, log *logrus.Logger) *PaymentService {
	return &PaymentService{repo: repo, previewer: previewer, mailer: mailer, log: log}
}

// Create files a PENDING payment request and notifies the approvers
func (s *PaymentService) Create(ctx context.Context, requesterID string, in CreatePaymentRequestInput) (*models.PaymentRequest, error) {
	project, err := s.repo.FindProjectByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	client, err := s.repo.FindClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	request := &models.PaymentRequest{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		RequesterID: requesterID,
		ClientID:    in.ClientID,
		Amount:      in.Amount,
		Category:    in.Category,
		DesiredDate: in.DesiredDate,
		Status:      models.PaymentPending,
		Note:        in.Note,
	}
	if err := s.repo.CreatePaymentRequest(ctx, request); err != nil {
		return nil, err
	}

	s.notifyApprovers(ctx, project, client, request)

	s.log.Infof("Payment request %s created for project %s", request.ID, project.Name)
	return request, nil
}

// FindPending retrieves the company's PENDING payment requests
func (s *PaymentService) FindPending(ctx context.Context, companyID string) ([]models.PaymentRequest, error) {
	status := models.PaymentPending
	return s.repo.ListPaymentRequests(ctx, companyID, nil, &status)
}

// FindAll retrieves the company's payment requests, optionally per project
func (s *PaymentService) FindAll(ctx context.Context, companyID string, projectID *string) ([]models.PaymentRequest, error) {
	return s.repo.ListPaymentRequests(ctx, companyID, projectID, nil)
}

// Approve moves a request to APPROVED and records the decision
func (s *PaymentService) Approve(ctx context.Context, requestID, approverID string) (*models.PaymentRequest, error) {
	log := &models.ApprovalLog{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		ApproverID: approverID,
		Action:     models.PaymentApproved,
	}
	request, err := s.repo.ResolvePaymentRequest(ctx, log, models.PaymentApproved)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Payment request %s approved by %s", requestID, approverID)
	return request, nil
}

// Reject moves a request to REJECTED and records the decision
func (s *PaymentService) Reject(ctx context.Context, requestID, approverID, comment string) (*models.PaymentRequest, error) {
	log := &models.ApprovalLog{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		ApproverID: approverID,
		Action:     models.PaymentRejected,
		Comment:    comment,
	}
	request, err := s.repo.ResolvePaymentRequest(ctx, log, models.PaymentRejected)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Payment request %s rejected by %s", requestID, approverID)
	return request, nil
}

// Impact returns the hypothetical balances and signals if the request were
// paid. Nothing is mutated.
func (s *PaymentService) Impact(ctx context.Context, requestID string) (*models.PaymentImpact, error) {
	return s.previewer.Preview(ctx, requestID)
}

// notifyApprovers fans an approval request out to owner and accounting
// users. Delivery failures are logged, never fatal for the request itself.
func (s *PaymentService) notifyApprovers(ctx context.Context, project *models.Project, client *models.Client, request *models.PaymentRequest) {
	approvers, err := s.repo.ListApprovers(ctx, project.CompanyID, false)
	if err != nil {
		s.log.Errorf("Failed to list approvers for company %s: %v", project.CompanyID, err)
		return
	}

	for _, approver := range approvers {
		notification := &models.Notification{
			ID:      uuid.NewString(),
			UserID:  approver.ID,
			Type:    models.NotifyApprovalRequest,
			Title:   "Payment approval request",
			Message: "A payment request for " + project.Name + " is waiting for approval",
			LinkURL: "/payments/" + request.ID,
		}
		if err := s.repo.CreateNotification(ctx, notification); err != nil {
			s.log.Errorf("Failed to create notification for user %s: %v", approver.ID, err)
			continue
		}
		if approver.Notify {
			if err := s.mailer.SendApprovalRequest(approver.Email, approver.Name, project.Name, client.Name, request.Amount); err != nil {
				s.log.Errorf("Failed to email approver %s: %v", approver.Email, err)
			}
		}
	}
}
