package utils

import "math"

// RoundDecimal rounds value to the given number of decimal places, with
// halves rounding away from zero. Display rounding only; stored and
// computed figures stay at full precision.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(value*pow) / pow
}
