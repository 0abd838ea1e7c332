package calc

import "math"

// SharpeRatio measures excess return per unit of total volatility.
// Returns NaN when standardDeviation is zero.
func SharpeRatio(riskFreeRate, averageReturn, standardDeviation float64) float64 {
	if standardDeviation == 0 {
		return math.NaN()
	}
	return (averageReturn - riskFreeRate) / standardDeviation
}
