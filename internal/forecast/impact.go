package forecast

import (
	"context"
	"fmt"

	"github.com/genbahq/cashsignal/internal/models"
)

// RequestSource resolves a payment request together with the company that
// owns it. Returns models.ErrNotFound when the request does not exist.
type RequestSource interface {
	FindPaymentRequestWithCompany(ctx context.Context, requestID string) (*models.PaymentRequest, *models.Company, error)
}

// Previewer computes the hypothetical after-state of approving a payment
// request. It never mutates the request or any stored balance.
type Previewer struct {
	src    RequestSource
	ledger ProjectLedger
}

// NewPreviewer initializes a new impact previewer
func NewPreviewer(src RequestSource, ledger ProjectLedger) *Previewer {
	return &Previewer{src: src, ledger: ledger}
}

// Preview returns the project and company balances as they would stand after
// paying the request, each classified against the company danger line. The
// project balance is its all-time realized income minus expense minus the
// request amount; the company balance is the bank balance minus the amount.
// No aggregate is queried when the request cannot be found.
func (p *Previewer) Preview(ctx context.Context, requestID string) (*models.PaymentImpact, error) {
	request, company, err := p.src.FindPaymentRequestWithCompany(ctx, requestID)
	if err != nil {
		return nil, err
	}

	totalIncome, err := p.ledger.SumProjectTransactions(ctx, request.ProjectID, models.TransactionIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum project income: %w", err)
	}
	totalExpense, err := p.ledger.SumProjectTransactions(ctx, request.ProjectID, models.TransactionExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum project expense: %w", err)
	}

	projectAfter := totalIncome.Sub(totalExpense).Sub(request.Amount)
	companyAfter := company.BankBalance.Sub(request.Amount)

	return &models.PaymentImpact{
		ProjectBalanceAfter: projectAfter,
		ProjectSignalAfter:  Classify(projectAfter, company.DangerLine),
		CompanyBalanceAfter: companyAfter,
		CompanySignalAfter:  Classify(companyAfter, company.DangerLine),
	}, nil
}
