package forecast

import (
	"testing"

	"github.com/genbahq/cashsignal/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		balance    string
		dangerLine string
		want       models.Signal
	}{
		{"well above double", "5000000", "2000000", models.SignalGreen},
		{"just above double", "4000000.01", "2000000", models.SignalGreen},
		{"exactly double is yellow", "4000000", "2000000", models.SignalYellow},
		{"between line and double", "3000000", "2000000", models.SignalYellow},
		{"exactly on the line is red", "2000000", "2000000", models.SignalRed},
		{"below the line", "1500000", "2000000", models.SignalRed},
		{"zero balance", "0", "2000000", models.SignalRed},
		{"negative balance", "-300000", "2000000", models.SignalRed},
		{"zero danger line, zero balance", "0", "0", models.SignalRed},
		{"zero danger line, positive balance", "0.01", "0", models.SignalGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			dangerLine := decimal.RequireFromString(tt.dangerLine)
			assert.Equal(t, tt.want, Classify(balance, dangerLine))
		})
	}
}

// Risk must decrease monotonically as the balance grows: once a balance
// reaches yellow or green, every larger balance stays at least as good.
func TestClassifyMonotonic(t *testing.T) {
	rank := map[models.Signal]int{
		models.SignalRed:    0,
		models.SignalYellow: 1,
		models.SignalGreen:  2,
	}
	dangerLine := decimal.NewFromInt(2000000)
	step := decimal.NewFromInt(250000)

	prev := -1
	balance := decimal.NewFromInt(-1000000)
	for i := 0; i < 40; i++ {
		got := rank[Classify(balance, dangerLine)]
		assert.GreaterOrEqual(t, got, prev, "rank dropped at balance %s", balance)
		prev = got
		balance = balance.Add(step)
	}
	assert.Equal(t, 2, prev)
}
