package application

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/pkg/mathutil"
)

// validateStakeAmount checks a stake amount against the minimum threshold and
// the supply ceiling before any provider call is made.
func validateStakeAmount(amount string, minAda decimal.Decimal) error {
	parsed, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return domain.ErrBelowMinimumAmount
	}
	if parsed.LessThan(minAda) {
		return domain.ErrBelowMinimumAmount
	}
	if !mathutil.IsValidAmount(parsed.String()) {
		return domain.ErrBelowMinimumAmount
	}
	return nil
}
