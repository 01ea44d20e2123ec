package utils

import "math"

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// PctOf returns num/den*100 rounded to two decimals, or nil when the divisor
// is zero. Percentage math over warehouse rows propagates null instead of
// failing on a zero divisor.
func PctOf(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := RoundTo(num/den*100, 2)
	return &v
}

// PctChangeFrom returns (to-from)/from*100 rounded to two decimals, or nil
// when from is nil or zero.
func PctChangeFrom(from *float64, to float64) *float64 {
	if from == nil || *from == 0 {
		return nil
	}
	return PctOf(to-*from, *from)
}
