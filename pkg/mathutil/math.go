package mathutil

import (
	"github.com/shopspring/decimal"
)

const adaPrecision = 6

var (
	// LovelacePerAda represents a single display unit expressed in base units.
	LovelacePerAda = decimal.New(1, adaPrecision)
	// MaxSupplyAda is the protocol-wide supply ceiling expressed in display units.
	MaxSupplyAda = decimal.New(45, 12)
)

func init() {
	decimal.DivisionPrecision = adaPrecision
}

// ToLovelace converts an ADA amount to its lovelace representation, flooring
// any fraction below the base unit. Unparsable input yields "0".
func ToLovelace(display string) string {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return "0"
	}
	return d.Mul(LovelacePerAda).Floor().String()
}

// ToAda converts a lovelace amount to ADA, formatted with exactly six
// fraction digits. Unparsable input yields "0.000000".
func ToAda(lovelace string) string {
	l, err := decimal.NewFromString(lovelace)
	if err != nil {
		return "0.000000"
	}
	return l.Div(LovelacePerAda).StringFixed(adaPrecision)
}

// IsValidAmount reports whether display parses to an amount strictly greater
// than zero and within the total supply ceiling.
func IsValidAmount(display string) bool {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return false
	}
	return d.IsPositive() && d.LessThanOrEqual(MaxSupplyAda)
}
