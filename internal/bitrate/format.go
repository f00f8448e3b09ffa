package bitrate

import (
	"math"
	"strconv"
)

// Outputs carry three decimal digits; internal computation is full precision.
const roundingDigits = 3

func round3(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	shift := math.Pow(10, roundingDigits)
	return math.Round(v*shift) / shift
}

// formatNumber renders a rounded value for CSV cells. Undefined values are
// spelled NaN.
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(round3(v), 'g', -1, 64)
}
