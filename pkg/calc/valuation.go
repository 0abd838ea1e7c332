package calc

import "math"

// EnterpriseValueToEBITDA is the EV/EBITDA valuation multiple.
// Returns NaN when ebitda is zero.
func EnterpriseValueToEBITDA(enterpriseValue, ebitda float64) float64 {
	if ebitda == 0 {
		return math.NaN()
	}
	return enterpriseValue / ebitda
}

// PriceToBook is the price-to-book valuation multiple.
// Returns NaN when bookValuePerShare is zero.
func PriceToBook(stockPrice, bookValuePerShare float64) float64 {
	if bookValuePerShare == 0 {
		return math.NaN()
	}
	return stockPrice / bookValuePerShare
}

// GrahamNumber estimates fair value as growth-adjusted earnings scaled by
// √22.5 and discounted by the prevailing bond yield.
// Returns NaN when earningsPerShare or bondYield is zero.
func GrahamNumber(earningsPerShare, epsGrowthRate, bondYield float64) float64 {
	if earningsPerShare == 0 || bondYield == 0 {
		return math.NaN()
	}
	return earningsPerShare * (1 + epsGrowthRate) * math.Sqrt(22.5) / bondYield
}

// GordonIntrinsicValueDDM values a stock as a perpetuity of dividends under
// the Gordon growth model. The perpetuity only converges when the discount
// rate exceeds the growth rate, otherwise NaN is returned.
func GordonIntrinsicValueDDM(currentDividend, growthRate, discountRate float64) float64 {
	if discountRate <= growthRate {
		return math.NaN()
	}
	return currentDividend / (discountRate - growthRate)
}
