package calc

import "math"

// TreynorRatio measures return earned in excess of the market per unit of
// systematic risk. Returns NaN when beta is zero.
func TreynorRatio(averageReturn, marketReturn, beta float64) float64 {
	if beta == 0 {
		return math.NaN()
	}
	return (averageReturn - marketReturn) / beta
}
