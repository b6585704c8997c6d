package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	signalMonths      = 3
	chartPastMonths   = 2
	chartFutureMonths = 3
)

// Engine projects the company bank balance forward across month buckets.
type Engine struct {
	gw  Gateway
	log *logrus.Logger
	now func() time.Time
}

// NewEngine initializes a new forecast engine
func NewEngine(gw Gateway, log *logrus.Logger) *Engine {
	return &Engine{gw: gw, log: log, now: time.Now}
}

// Signals projects three month buckets (current plus next two), classifying
// each. Each month's prediction becomes the next month's opening balance, so
// forecast error compounds on purpose: the tool plans conservatively.
// Expenses use the pessimistic aggregate (approved plus pending).
func (e *Engine) Signals(ctx context.Context, companyID string, bankBalance, dangerLine decimal.Decimal) ([]models.MonthSignal, error) {
	now := e.now()
	signals := make([]models.MonthSignal, 0, signalMonths)
	runningBalance := bankBalance

	for offset := 0; offset < signalMonths; offset++ {
		start, end := MonthRange(now, offset)

		income, err := e.gw.SumScheduledIncome(ctx, companyID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum scheduled income: %w", err)
		}
		expense, err := e.gw.SumApprovedAndPendingExpense(ctx, companyID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expected expense: %w", err)
		}

		predicted := runningBalance.Add(income).Sub(expense)
		signals = append(signals, models.MonthSignal{
			Month:            MonthLabel(now, offset),
			PredictedBalance: predicted,
			Signal:           Classify(predicted, dangerLine),
		})
		runningBalance = predicted
	}

	e.log.Debugf("Calculated %d month signals for company %s", len(signals), companyID)
	return signals, nil
}

// Chart produces the half-month balance trajectory: two past months
// reconstructed from realized transaction deltas, the current month split at
// day 15, and three future months split into halves. Unlike Signals, future
// expenses count only approved requests — the chart shows the
// likely-committed trajectory while the signals warn early.
func (e *Engine) Chart(ctx context.Context, companyID string, bankBalance, dangerLine decimal.Decimal) ([]models.ChartPoint, error) {
	now := e.now().UTC()
	points := make([]models.ChartPoint, 0, 2*(chartPastMonths+1+chartFutureMonths))

	// Past months: current balance plus the month's realized delta.
	for offset := -chartPastMonths; offset <= -1; offset++ {
		monthStart := StartOfMonth(now, offset)
		mid := MidOfMonth(now, offset)
		monthEnd := EndOfMonth(now, offset)

		midDelta, err := e.gw.SumTransactionDelta(ctx, companyID, monthStart, mid)
		if err != nil {
			return nil, fmt.Errorf("failed to sum transaction delta: %w", err)
		}
		fullDelta, err := e.gw.SumTransactionDelta(ctx, companyID, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to sum transaction delta: %w", err)
		}

		points = append(points,
			models.ChartPoint{Date: mid.Format("2006-01-02"), Balance: bankBalance.Add(midDelta), DangerLine: dangerLine},
			models.ChartPoint{Date: monthEnd.Format("2006-01-02"), Balance: bankBalance.Add(fullDelta), DangerLine: dangerLine},
		)
	}

	// Current month: the day-15 point carries the committed balance as-is;
	// the month-end point adds what is still scheduled for the remaining days.
	currentMid := MidOfMonth(now, 0)
	currentEnd := EndOfMonth(now, 0)
	points = append(points, models.ChartPoint{
		Date:       currentMid.Format("2006-01-02"),
		Balance:    bankBalance,
		DangerLine: dangerLine,
	})

	y, m, d := now.Date()
	remainderStart := time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)

	income, err := e.gw.SumScheduledIncome(ctx, companyID, remainderStart, currentEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum scheduled income: %w", err)
	}
	expense, err := e.gw.SumApprovedExpense(ctx, companyID, remainderStart, currentEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved expense: %w", err)
	}

	runningBalance := bankBalance.Add(income).Sub(expense)
	points = append(points, models.ChartPoint{
		Date:       currentEnd.Format("2006-01-02"),
		Balance:    runningBalance,
		DangerLine: dangerLine,
	})

	// Future months, each split into a first and second half.
	for offset := 1; offset <= chartFutureMonths; offset++ {
		start, end := MonthRange(now, offset)
		mid := MidOfMonth(now, offset)
		lateStart := time.Date(start.Year(), start.Month(), 16, 0, 0, 0, 0, time.UTC)
		monthEnd := EndOfMonth(now, offset)

		midIncome, err := e.gw.SumScheduledIncome(ctx, companyID, start, mid)
		if err != nil {
			return nil, fmt.Errorf("failed to sum scheduled income: %w", err)
		}
		midExpense, err := e.gw.SumApprovedExpense(ctx, companyID, start, mid)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved expense: %w", err)
		}
		lateIncome, err := e.gw.SumScheduledIncome(ctx, companyID, lateStart, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum scheduled income: %w", err)
		}
		lateExpense, err := e.gw.SumApprovedExpense(ctx, companyID, lateStart, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved expense: %w", err)
		}

		midBalance := runningBalance.Add(midIncome).Sub(midExpense)
		endBalance := midBalance.Add(lateIncome).Sub(lateExpense)

		points = append(points,
			models.ChartPoint{Date: mid.Format("2006-01-02"), Balance: midBalance, DangerLine: dangerLine},
			models.ChartPoint{Date: monthEnd.Format("2006-01-02"), Balance: endBalance, DangerLine: dangerLine},
		)
		runningBalance = endBalance
	}

	return points, nil
}
