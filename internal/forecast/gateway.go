package forecast

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway is the read-only aggregation interface the engine consumes.
// All ranges are inclusive, all sums treat missing rows as zero, and the
// implementation must keep monetary sums in fixed-point arithmetic.
type Gateway interface {
	// SumScheduledIncome sums IncomeSchedule.amount with status SCHEDULED or
	// RECEIVED and scheduledDate in range.
	SumScheduledIncome(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)

	// SumApprovedAndPendingExpense sums PaymentRequest.amount with status
	// APPROVED or PENDING and desiredDate in range. Counting unapproved spend
	// keeps the signal forecast pessimistic.
	SumApprovedAndPendingExpense(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)

	// SumApprovedExpense is the approved-only variant used by the chart.
	SumApprovedExpense(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)

	// SumTransactionDelta returns income minus expense over realized
	// transactions with date in range.
	SumTransactionDelta(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error)
}

// ProjectLedger exposes all-time transaction totals for a single project,
// used by the impact preview.
type ProjectLedger interface {
	SumProjectTransactions(ctx context.Context, projectID, txType string) (decimal.Decimal, error)
}

// OverdueIncome is one overdue income schedule with its project name.
type OverdueIncome struct {
	ProjectName string
	Amount      decimal.Decimal
}

// AlertSource exposes the record counts the alert deriver reads.
type AlertSource interface {
	// CountPendingPayments returns the count and total amount of PENDING
	// payment requests for the company.
	CountPendingPayments(ctx context.Context, companyID string) (int, decimal.Decimal, error)

	// ListOverdueIncome returns every OVERDUE income schedule for the company.
	ListOverdueIncome(ctx context.Context, companyID string) ([]OverdueIncome, error)
}
