package forecast

import (
	"context"
	"fmt"

	"github.com/genbahq/cashsignal/internal/models"
)

// Deriver turns forecast output and outstanding record counts into advisory
// alerts. Output order is fixed: the pending-payments warning first, then one
// danger alert per overdue income schedule, then one per red forecast month.
// No deduplication or prioritization happens beyond that.
type Deriver struct {
	src AlertSource
}

// NewDeriver initializes a new alert deriver
func NewDeriver(src AlertSource) *Deriver {
	return &Deriver{src: src}
}

// Derive builds the alert list for a company from already-computed signals.
func (d *Deriver) Derive(ctx context.Context, companyID string, signals []models.MonthSignal) ([]models.Alert, error) {
	alerts := []models.Alert{}

	pendingCount, pendingTotal, err := d.src.CountPendingPayments(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending payments: %w", err)
	}
	if pendingCount > 0 {
		alerts = append(alerts, models.Alert{
			Type:   models.AlertWarning,
			Code:   models.AlertPendingApprovals,
			Count:  pendingCount,
			Amount: pendingTotal,
		})
	}

	overdue, err := d.src.ListOverdueIncome(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue income: %w", err)
	}
	for _, schedule := range overdue {
		alerts = append(alerts, models.Alert{
			Type:        models.AlertDanger,
			Code:        models.AlertIncomeOverdue,
			ProjectName: schedule.ProjectName,
			Amount:      schedule.Amount,
		})
	}

	for _, signal := range signals {
		if signal.Signal == models.SignalRed {
			alerts = append(alerts, models.Alert{
				Type:             models.AlertDanger,
				Code:             models.AlertDeficitForecast,
				Month:            signal.Month,
				PredictedBalance: signal.PredictedBalance,
			})
		}
	}

	return alerts, nil
}
