package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbahq/cashsignal/internal/models"
)

type fakeAlertSource struct {
	pendingCount int
	pendingTotal decimal.Decimal
	overdue      []OverdueIncome
	err          error
}

func (s *fakeAlertSource) CountPendingPayments(_ context.Context, _ string) (int, decimal.Decimal, error) {
	return s.pendingCount, s.pendingTotal, s.err
}

func (s *fakeAlertSource) ListOverdueIncome(_ context.Context, _ string) ([]OverdueIncome, error) {
	return s.overdue, s.err
}

func TestDeriveAlertsOrder(t *testing.T) {
	src := &fakeAlertSource{
		pendingCount: 3,
		pendingTotal: dec(450000),
		overdue: []OverdueIncome{
			{ProjectName: "Riverside warehouse", Amount: dec(1200000)},
			{ProjectName: "Station annex", Amount: dec(800000)},
		},
	}
	d := NewDeriver(src)

	signals := []models.MonthSignal{
		{Month: "2026-08", PredictedBalance: dec(3000000), Signal: models.SignalYellow},
		{Month: "2026-09", PredictedBalance: dec(1500000), Signal: models.SignalRed},
		{Month: "2026-10", PredictedBalance: dec(-200000), Signal: models.SignalRed},
	}

	alerts, err := d.Derive(context.Background(), "c1", signals)
	require.NoError(t, err)
	require.Len(t, alerts, 5)

	assert.Equal(t, models.AlertWarning, alerts[0].Type)
	assert.Equal(t, models.AlertPendingApprovals, alerts[0].Code)
	assert.Equal(t, 3, alerts[0].Count)
	assert.True(t, alerts[0].Amount.Equal(dec(450000)))

	assert.Equal(t, models.AlertDanger, alerts[1].Type)
	assert.Equal(t, models.AlertIncomeOverdue, alerts[1].Code)
	assert.Equal(t, "Riverside warehouse", alerts[1].ProjectName)
	assert.Equal(t, "Station annex", alerts[2].ProjectName)

	assert.Equal(t, models.AlertDeficitForecast, alerts[3].Code)
	assert.Equal(t, "2026-09", alerts[3].Month)
	assert.True(t, alerts[3].PredictedBalance.Equal(dec(1500000)))
	assert.Equal(t, "2026-10", alerts[4].Month)
}

func TestDeriveAlertsEmpty(t *testing.T) {
	d := NewDeriver(&fakeAlertSource{})

	signals := []models.MonthSignal{
		{Month: "2026-08", PredictedBalance: dec(9000000), Signal: models.SignalGreen},
	}
	alerts, err := d.Derive(context.Background(), "c1", signals)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
}

func TestDeriveAlertsNoPendingAlertAtZero(t *testing.T) {
	src := &fakeAlertSource{pendingCount: 0, pendingTotal: decimal.Zero}
	d := NewDeriver(src)

	alerts, err := d.Derive(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDeriveAlertsPropagatesError(t *testing.T) {
	wantErr := errors.New("storage unreachable")
	d := NewDeriver(&fakeAlertSource{err: wantErr})

	_, err := d.Derive(context.Background(), "c1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
