// Package format renders metric values for the dashboard's stat grid.
package format

import (
	"fmt"
	"math"
)

// Number renders a value with a K/M/B magnitude suffix: 1_234_000 with two
// decimals becomes "1.23M". Values under a thousand are printed plain.
func Number(value float64, decimals int) string {
	abs := math.Abs(value)

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.*fB", decimals, value/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.*fM", decimals, value/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.*fK", decimals, value/1_000)
	default:
		return fmt.Sprintf("%.*f", decimals, value)
	}
}

// Percentage renders a change percentage with an explicit sign, "+2.50%" or
// "-1.75%". Zero gets the plus sign.
func Percentage(value float64, decimals int) string {
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.*f%%", sign, decimals, value)
}
