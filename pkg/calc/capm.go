package calc

// ExpectedReturnCAPM prices an asset's expected return from its beta against
// the market risk premium.
func ExpectedReturnCAPM(riskFreeRate, marketReturn, beta float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}
