package calc

import "math"

// SortinoRatio measures excess return per unit of downside volatility.
// Returns NaN when downsideDeviation is zero.
func SortinoRatio(riskFreeRate, averageReturn, downsideDeviation float64) float64 {
	if downsideDeviation == 0 {
		return math.NaN()
	}
	return (averageReturn - riskFreeRate) / downsideDeviation
}
