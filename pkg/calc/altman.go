package calc

// AltmanZScore scores bankruptcy risk from balance-sheet fundamentals. The
// weighted component sum is normalized by the market-equity to liabilities
// ratio rather than reported directly. There is no explicit guard; a zero
// totalAssets or totalLiabilities propagates as Inf or NaN through the
// division.
func AltmanZScore(workingCapital, retainedEarnings, totalAssets, marketValueEquity, totalLiabilities float64) float64 {
	numerator := 1.2*(workingCapital/totalAssets) +
		1.4*(retainedEarnings/totalAssets) +
		3.3*(marketValueEquity/totalLiabilities) +
		0.6*((totalAssets-totalLiabilities)/totalLiabilities)
	denominator := marketValueEquity / totalLiabilities
	return numerator / denominator
}
