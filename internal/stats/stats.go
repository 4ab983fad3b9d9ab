// Package stats derives display metrics from a scenario's precomputed
// summary statistics.
package stats

import (
	"math"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

// StatKind selects which metric StatColor classifies.
type StatKind string

const (
	KindPrice      StatKind = "price"
	KindOI         StatKind = "oi"
	KindRatio      StatKind = "ratio"
	KindVolatility StatKind = "volatility"
)

// CSS classes consumed by the dashboard's stat grid.
const (
	ColorFavorable   = "text-primary"
	ColorUnfavorable = "text-danger"
	ColorNeutral     = "text-gray-400"
)

// OIPriceRatio returns the open-interest momentum relative to price momentum.
// A zero PriceEnd yields 0 rather than an error.
//
// Known quirk, kept on purpose: the guard checks PriceEnd but the divisor is
// PriceChangePercent. A flat price series (PriceChangePercent == 0) with a
// nonzero PriceEnd therefore divides by zero and returns ±Inf or NaN.
func OIPriceRatio(s model.Statistics) float64 {
	if s.PriceEnd == 0 {
		return 0
	}
	return math.Abs(s.OiChangePercent / s.PriceChangePercent)
}

// StatColor classifies one metric into the two-band display colouring.
// Unknown kinds get the neutral class.
func StatColor(kind StatKind, s model.Statistics) string {
	switch kind {
	case KindPrice:
		return favorable(s.PriceChangePercent >= 0)
	case KindOI:
		return favorable(s.OiChangePercent >= 0)
	case KindRatio:
		return favorable(OIPriceRatio(s) >= 2.0)
	case KindVolatility:
		return favorable(s.VolatilityPercent < 2.5)
	default:
		return ColorNeutral
	}
}

func favorable(ok bool) string {
	if ok {
		return ColorFavorable
	}
	return ColorUnfavorable
}
