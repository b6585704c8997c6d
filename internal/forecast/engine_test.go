package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genbahq/cashsignal/internal/models"
)

// fakeGateway serves fixed sums keyed by the start date of the queried range.
type fakeGateway struct {
	income   map[string]decimal.Decimal
	pending  map[string]decimal.Decimal
	approved map[string]decimal.Decimal
	delta    map[string]decimal.Decimal // keyed by "start|end"
	err      error

	pendingCalls  int
	approvedCalls int
}

func (g *fakeGateway) lookup(m map[string]decimal.Decimal, key string) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return m[key]
}

func (g *fakeGateway) SumScheduledIncome(_ context.Context, _ string, start, _ time.Time) (decimal.Decimal, error) {
	if g.err != nil {
		return decimal.Zero, g.err
	}
	return g.lookup(g.income, start.Format("2006-01-02")), nil
}

func (g *fakeGateway) SumApprovedAndPendingExpense(_ context.Context, _ string, start, _ time.Time) (decimal.Decimal, error) {
	g.pendingCalls++
	if g.err != nil {
		return decimal.Zero, g.err
	}
	return g.lookup(g.pending, start.Format("2006-01-02")), nil
}

func (g *fakeGateway) SumApprovedExpense(_ context.Context, _ string, start, _ time.Time) (decimal.Decimal, error) {
	g.approvedCalls++
	if g.err != nil {
		return decimal.Zero, g.err
	}
	return g.lookup(g.approved, start.Format("2006-01-02")), nil
}

func (g *fakeGateway) SumTransactionDelta(_ context.Context, _ string, start, end time.Time) (decimal.Decimal, error) {
	if g.err != nil {
		return decimal.Zero, g.err
	}
	return g.lookup(g.delta, start.Format("2006-01-02")+"|"+end.Format("2006-01-02")), nil
}

func newTestEngine(gw Gateway, now time.Time) *Engine {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	e := NewEngine(gw, log)
	e.now = func() time.Time { return now }
	return e
}

var testNow = time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestSignalsAllZeroAggregatesStayGreen(t *testing.T) {
	e := newTestEngine(&fakeGateway{}, testNow)

	signals, err := e.Signals(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)
	require.Len(t, signals, 3)

	for _, s := range signals {
		assert.Equal(t, models.SignalGreen, s.Signal)
		assert.True(t, s.PredictedBalance.Equal(dec(5000000)), "got %s", s.PredictedBalance)
	}
	assert.Equal(t, []string{"2026-08", "2026-09", "2026-10"},
		[]string{signals[0].Month, signals[1].Month, signals[2].Month})
}

func TestSignalsFirstMonthYellow(t *testing.T) {
	e := newTestEngine(&fakeGateway{}, testNow)

	signals, err := e.Signals(context.Background(), "c1", dec(3000000), dec(2000000))
	require.NoError(t, err)
	require.Len(t, signals, 3)
	assert.Equal(t, models.SignalYellow, signals[0].Signal)
	assert.True(t, signals[0].PredictedBalance.Equal(dec(3000000)))
}

func TestSignalsExactDoubleIsYellow(t *testing.T) {
	e := newTestEngine(&fakeGateway{}, testNow)

	signals, err := e.Signals(context.Background(), "c1", dec(4000000), dec(2000000))
	require.NoError(t, err)
	assert.Equal(t, models.SignalYellow, signals[0].Signal)
}

func TestSignalsChainMonthToMonth(t *testing.T) {
	gw := &fakeGateway{
		income: map[string]decimal.Decimal{
			"2026-08-01": dec(1000000),
			"2026-09-01": dec(2000000),
			"2026-10-01": dec(500000),
		},
		pending: map[string]decimal.Decimal{
			"2026-08-01": dec(300000),
			"2026-09-01": dec(4400000),
			"2026-10-01": dec(700000),
		},
	}
	e := newTestEngine(gw, testNow)

	signals, err := e.Signals(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)
	require.Len(t, signals, 3)

	// Each month opens with the previous month's prediction.
	assert.True(t, signals[0].PredictedBalance.Equal(dec(5700000)))
	assert.True(t, signals[1].PredictedBalance.Equal(dec(3300000)))
	assert.True(t, signals[2].PredictedBalance.Equal(dec(3100000)))

	assert.Equal(t, models.SignalGreen, signals[0].Signal)
	assert.Equal(t, models.SignalYellow, signals[1].Signal)
	assert.Equal(t, models.SignalYellow, signals[2].Signal)

	// Months strictly increasing and contiguous.
	assert.Equal(t, "2026-08", signals[0].Month)
	assert.Equal(t, "2026-09", signals[1].Month)
	assert.Equal(t, "2026-10", signals[2].Month)
}

func TestSignalsPropagatesGatewayError(t *testing.T) {
	wantErr := errors.New("connection refused")
	e := newTestEngine(&fakeGateway{err: wantErr}, testNow)

	_, err := e.Signals(context.Background(), "c1", dec(5000000), dec(2000000))
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestSignalsIdempotent(t *testing.T) {
	gw := &fakeGateway{
		income:  map[string]decimal.Decimal{"2026-08-01": dec(250000)},
		pending: map[string]decimal.Decimal{"2026-09-01": dec(100000)},
	}
	e := newTestEngine(gw, testNow)

	first, err := e.Signals(context.Background(), "c1", dec(3000000), dec(2000000))
	require.NoError(t, err)
	second, err := e.Signals(context.Background(), "c1", dec(3000000), dec(2000000))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChartPointSequence(t *testing.T) {
	e := newTestEngine(&fakeGateway{}, testNow)

	points, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)
	require.Len(t, points, 12)

	wantDates := []string{
		"2026-06-15", "2026-06-30",
		"2026-07-15", "2026-07-31",
		"2026-08-15", "2026-08-31",
		"2026-09-15", "2026-09-30",
		"2026-10-15", "2026-10-31",
		"2026-11-15", "2026-11-30",
	}
	for i, p := range points {
		assert.Equal(t, wantDates[i], p.Date)
		assert.True(t, p.Balance.Equal(dec(5000000)), "point %d got %s", i, p.Balance)
		assert.True(t, p.DangerLine.Equal(dec(2000000)))
	}
}

func TestChartReconstructsPastFromDeltas(t *testing.T) {
	gw := &fakeGateway{
		delta: map[string]decimal.Decimal{
			"2026-06-01|2026-06-15": dec(-200000),
			"2026-06-01|2026-06-30": dec(-500000),
			"2026-07-01|2026-07-15": dec(300000),
			"2026-07-01|2026-07-31": dec(100000),
		},
	}
	e := newTestEngine(gw, testNow)

	points, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)

	assert.True(t, points[0].Balance.Equal(dec(4800000)))
	assert.True(t, points[1].Balance.Equal(dec(4500000)))
	assert.True(t, points[2].Balance.Equal(dec(5300000)))
	assert.True(t, points[3].Balance.Equal(dec(5100000)))
}

func TestChartCurrentMonthSplit(t *testing.T) {
	// Remaining days of the current month start the day after "now".
	gw := &fakeGateway{
		income:   map[string]decimal.Decimal{"2026-08-21": dec(900000)},
		approved: map[string]decimal.Decimal{"2026-08-21": dec(400000)},
	}
	e := newTestEngine(gw, testNow)

	points, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)

	// Day-15 point carries the committed balance untouched.
	assert.Equal(t, "2026-08-15", points[4].Date)
	assert.True(t, points[4].Balance.Equal(dec(5000000)))

	// Month-end point adds the remainder's scheduled income minus approved expense.
	assert.Equal(t, "2026-08-31", points[5].Date)
	assert.True(t, points[5].Balance.Equal(dec(5500000)))

	// Future months chain from the current month's closing balance.
	assert.True(t, points[6].Balance.Equal(dec(5500000)))
}

func TestChartFutureHalvesChain(t *testing.T) {
	gw := &fakeGateway{
		income: map[string]decimal.Decimal{
			"2026-09-01": dec(1000000), // first half of September
			"2026-09-16": dec(500000),  // second half
		},
		approved: map[string]decimal.Decimal{
			"2026-09-01": dec(300000),
			"2026-09-16": dec(800000),
		},
	}
	e := newTestEngine(gw, testNow)

	points, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)

	assert.True(t, points[6].Balance.Equal(dec(5700000)), "mid September")
	assert.True(t, points[7].Balance.Equal(dec(5400000)), "end September")
	assert.True(t, points[8].Balance.Equal(dec(5400000)), "October opens from September close")
}

// The chart must stay on the optimistic path: approved-only expenses, never
// the approved-plus-pending aggregate the signal forecast uses.
func TestChartNeverUsesPendingExpense(t *testing.T) {
	gw := &fakeGateway{
		pending: map[string]decimal.Decimal{"2026-08-21": dec(99999999)},
	}
	e := newTestEngine(gw, testNow)

	points, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.NoError(t, err)

	assert.Zero(t, gw.pendingCalls)
	assert.Equal(t, 7, gw.approvedCalls) // current remainder + 2 per future month
	for _, p := range points {
		assert.True(t, p.Balance.Equal(dec(5000000)))
	}
}

func TestChartPropagatesGatewayError(t *testing.T) {
	wantErr := errors.New("storage unreachable")
	e := newTestEngine(&fakeGateway{err: wantErr}, testNow)

	_, err := e.Chart(context.Background(), "c1", dec(5000000), dec(2000000))
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
