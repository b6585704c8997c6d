package forecast

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbahq/cashsignal/internal/models"
)

type fakeRequestSource struct {
	request *models.PaymentRequest
	company *models.Company
}

func (s *fakeRequestSource) FindPaymentRequestWithCompany(_ context.Context, requestID string) (*models.PaymentRequest, *models.Company, error) {
	if s.request == nil || s.request.ID != requestID {
		return nil, nil, models.ErrNotFound
	}
	return s.request, s.company, nil
}

type fakeLedger struct {
	income  decimal.Decimal
	expense decimal.Decimal
	calls   int
}

func (l *fakeLedger) SumProjectTransactions(_ context.Context, _ string, txType string) (decimal.Decimal, error) {
	l.calls++
	if txType == models.TransactionIncome {
		return l.income, nil
	}
	return l.expense, nil
}

func TestPreviewImpact(t *testing.T) {
	src := &fakeRequestSource{
		request: &models.PaymentRequest{
			ID:        "req-1",
			ProjectID: "p1",
			Amount:    dec(1000000),
			Status:    models.PaymentPending,
		},
		company: &models.Company{
			ID:          "c1",
			BankBalance: dec(5000000),
			DangerLine:  dec(2000000),
		},
	}
	ledger := &fakeLedger{income: dec(3000000), expense: dec(500000)}
	p := NewPreviewer(src, ledger)

	impact, err := p.Preview(context.Background(), "req-1")
	require.NoError(t, err)

	assert.True(t, impact.ProjectBalanceAfter.Equal(dec(1500000)))
	assert.Equal(t, models.SignalRed, impact.ProjectSignalAfter)
	assert.True(t, impact.CompanyBalanceAfter.Equal(dec(4000000)))
	assert.Equal(t, models.SignalYellow, impact.CompanySignalAfter, "exact double stays yellow")
}

func TestPreviewImpactNotFound(t *testing.T) {
	ledger := &fakeLedger{}
	p := NewPreviewer(&fakeRequestSource{}, ledger)

	_, err := p.Preview(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Zero(t, ledger.calls, "no aggregate queries for a missing request")
}

func TestPreviewImpactIdempotent(t *testing.T) {
	src := &fakeRequestSource{
		request: &models.PaymentRequest{ID: "req-1", ProjectID: "p1", Amount: dec(200000)},
		company: &models.Company{ID: "c1", BankBalance: dec(1000000), DangerLine: dec(300000)},
	}
	p := NewPreviewer(src, &fakeLedger{income: dec(900000), expense: dec(100000)})

	first, err := p.Preview(context.Background(), "req-1")
	require.NoError(t, err)
	second, err := p.Preview(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
