package forecast

import (
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Classify maps a balance against the company danger line:
// above twice the line is green, above the line is yellow, at or below is red.
// Both boundaries fall on the riskier side.
func Classify(balance, dangerLine decimal.Decimal) models.Signal {
	if balance.GreaterThan(dangerLine.Mul(two)) {
		return models.SignalGreen
	}
	if balance.GreaterThan(dangerLine) {
		return models.SignalYellow
	}
	return models.SignalRed
}
