package asset

import (
	"math"

	"github.com/shopspring/decimal"

	"aktiva/internal/core/types"
)

// daysPerYear converts a calendar-day difference into fractional years.
const daysPerYear = 365.25

// ElapsedYears returns the fractional number of years between purchase and asOf.
func ElapsedYears(purchase, asOf types.Date) float64 {
	return float64(asOf.DaysSince(purchase)) / daysPerYear
}

// DepreciatedValue computes the value of an asset as of the given date.
//
// The computation is stateless: it derives the value from purchase date,
// purchase price, salvage value, useful life and method only, so repeated
// calls with the same asOf date always yield the same result. Assets outside
// Active status are frozen and keep their stored current value. The result is
// always within [salvage value, purchase price].
//
// Elapsed time is a continuous quantity (calendar days / 365.25). The
// declining-balance schedule applies that fractional value directly as a real
// exponent, while sum-of-years-digits sums only over completed whole years;
// the asymmetry is intentional and kept for compatibility with existing
// stored values.
func DepreciatedValue(a *Asset, asOf types.Date) types.Money {
	if a.Status != StatusActive {
		return a.CurrentValue
	}

	elapsed := ElapsedYears(a.PurchaseDate, asOf)
	life := a.UsefulLifeYears
	if elapsed > float64(life) {
		// Fully depreciated.
		return a.SalvageValue
	}

	price := a.PurchasePrice.Decimal
	salvage := a.SalvageValue.Decimal

	var value decimal.Decimal
	switch a.DepreciationMethod {
	case MethodStraightLine:
		annual := price.Sub(salvage).Div(decimal.NewFromInt(int64(life)))
		value = price.Sub(annual.Mul(decimal.NewFromFloat(elapsed)))

	case MethodDecliningBalance:
		// Double-declining convention: rate = 2/life, applied with a real
		// (non-annual-stepped) exponent over fractional elapsed years.
		factor := math.Pow(1-2/float64(life), elapsed)
		if math.IsNaN(factor) || factor < 0 {
			// A one-year life drives the base negative; treat as fully depreciated.
			return a.SalvageValue
		}
		value = price.Mul(decimal.NewFromFloat(factor))

	case MethodSumOfYearsDigits:
		denominator := decimal.NewFromInt(int64(life * (life + 1) / 2))
		base := price.Sub(salvage)
		total := decimal.Zero
		for year := 0; year < int(elapsed); year++ {
			fraction := decimal.NewFromInt(int64(life - year)).Div(denominator)
			total = total.Add(fraction.Mul(base))
		}
		value = price.Sub(total)

	default:
		return a.CurrentValue
	}

	return types.NewMoney(clampValue(value.Round(2), salvage, price))
}

// Revalue recomputes the asset's current value in place.
func (a *Asset) Revalue(asOf types.Date) {
	a.CurrentValue = DepreciatedValue(a, asOf)
}

func clampValue(v, floor, ceiling decimal.Decimal) decimal.Decimal {
	return decimal.Max(floor, decimal.Min(v, ceiling))
}
