package fixed

// Decimal counterparts of the float64 ratios in pkg/calc, for callers that
// keep their books in fixed-point arithmetic. Decimals carry no NaN, so a
// ratio whose guard fails returns Zero instead.

func SharpeRatio(riskFreeRate, averageReturn, standardDeviation Point) Point {
	if standardDeviation.IsZero() {
		return Zero
	}
	return averageReturn.Sub(riskFreeRate).Div(standardDeviation)
}

func SortinoRatio(riskFreeRate, averageReturn, downsideDeviation Point) Point {
	if downsideDeviation.IsZero() {
		return Zero
	}
	return averageReturn.Sub(riskFreeRate).Div(downsideDeviation)
}

func TreynorRatio(averageReturn, marketReturn, beta Point) Point {
	if beta.IsZero() {
		return Zero
	}
	return averageReturn.Sub(marketReturn).Div(beta)
}

func ExpectedReturnCAPM(riskFreeRate, marketReturn, beta Point) Point {
	return riskFreeRate.Add(beta.Mul(marketReturn.Sub(riskFreeRate)))
}

func EnterpriseValueToEBITDA(enterpriseValue, ebitda Point) Point {
	if ebitda.IsZero() {
		return Zero
	}
	return enterpriseValue.Div(ebitda)
}

func PriceToBook(stockPrice, bookValuePerShare Point) Point {
	if bookValuePerShare.IsZero() {
		return Zero
	}
	return stockPrice.Div(bookValuePerShare)
}

func GrahamNumber(earningsPerShare, epsGrowthRate, bondYield Point) Point {
	if earningsPerShare.IsZero() || bondYield.IsZero() {
		return Zero
	}
	return earningsPerShare.Mul(One.Add(epsGrowthRate)).Mul(SqrtGraham).Div(bondYield)
}

func GordonIntrinsicValueDDM(currentDividend, growthRate, discountRate Point) Point {
	if discountRate.Lte(growthRate) {
		return Zero
	}
	return currentDividend.Div(discountRate.Sub(growthRate))
}

// AltmanZScore guards the divisors explicitly since a decimal division by
// zero panics rather than propagating like its float64 counterpart.
func AltmanZScore(workingCapital, retainedEarnings, totalAssets, marketValueEquity, totalLiabilities Point) Point {
	if totalAssets.IsZero() || totalLiabilities.IsZero() || marketValueEquity.IsZero() {
		return Zero
	}
	numerator := MustNew(12, 1).Mul(workingCapital.Div(totalAssets)).
		Add(MustNew(14, 1).Mul(retainedEarnings.Div(totalAssets))).
		Add(MustNew(33, 1).Mul(marketValueEquity.Div(totalLiabilities))).
		Add(MustNew(6, 1).Mul(totalAssets.Sub(totalLiabilities).Div(totalLiabilities)))
	denominator := marketValueEquity.Div(totalLiabilities)
	return numerator.Div(denominator)
}
