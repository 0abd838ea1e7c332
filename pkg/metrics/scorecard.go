package metrics

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/peter-kozarec/finratio/pkg/calc"
	"github.com/peter-kozarec/finratio/pkg/utility"
)

// ScorecardInput carries the raw fundamentals and return statistics of one
// issuer. Every field is an already-computed scalar; the package does no
// time-series aggregation.
type ScorecardInput struct {
	Symbol string
	AsOf   time.Time

	RiskFreeRate      float64
	AverageReturn     float64
	MarketReturn      float64
	StandardDeviation float64
	DownsideDeviation float64
	Beta              float64

	EnterpriseValue   float64
	EBITDA            float64
	StockPrice        float64
	BookValuePerShare float64
	EarningsPerShare  float64
	EPSGrowthRate     float64
	BondYield         float64

	WorkingCapital    float64
	RetainedEarnings  float64
	TotalAssets       float64
	MarketValueEquity float64
	TotalLiabilities  float64

	CurrentDividend float64
	DividendGrowth  float64
	DiscountRate    float64
}

// Scorecard holds every ratio computed for one issuer. Undefined ratios stay
// NaN and are omitted when printed.
type Scorecard struct {
	Symbol string
	AsOf   time.Time

	Sharpe             float64
	Sortino            float64
	Treynor            float64
	ExpectedReturn     float64
	EVToEBITDA         float64
	PriceToBook        float64
	GrahamNumber       float64
	AltmanZScore       float64
	GordonIntrinsicDDM float64
}

// Compute evaluates all ratios from a single input snapshot.
func Compute(in ScorecardInput) Scorecard {
	return Scorecard{
		Symbol:             in.Symbol,
		AsOf:               in.AsOf,
		Sharpe:             calc.SharpeRatio(in.RiskFreeRate, in.AverageReturn, in.StandardDeviation),
		Sortino:            calc.SortinoRatio(in.RiskFreeRate, in.AverageReturn, in.DownsideDeviation),
		Treynor:            calc.TreynorRatio(in.AverageReturn, in.MarketReturn, in.Beta),
		ExpectedReturn:     calc.ExpectedReturnCAPM(in.RiskFreeRate, in.MarketReturn, in.Beta),
		EVToEBITDA:         calc.EnterpriseValueToEBITDA(in.EnterpriseValue, in.EBITDA),
		PriceToBook:        calc.PriceToBook(in.StockPrice, in.BookValuePerShare),
		GrahamNumber:       calc.GrahamNumber(in.EarningsPerShare, in.EPSGrowthRate, in.BondYield),
		AltmanZScore:       calc.AltmanZScore(in.WorkingCapital, in.RetainedEarnings, in.TotalAssets, in.MarketValueEquity, in.TotalLiabilities),
		GordonIntrinsicDDM: calc.GordonIntrinsicValueDDM(in.CurrentDividend, in.DividendGrowth, in.DiscountRate),
	}
}

func (s Scorecard) Print(logger *zap.Logger) {
	riskFields := []zap.Field{
		zap.String("symbol", s.Symbol),
		zap.Time("as_of", s.AsOf),
		zap.Stringer("execution_id", utility.GetExecutionID()),
	}
	riskFields = appendRatio(riskFields, "sharpe_ratio", s.Sharpe)
	riskFields = appendRatio(riskFields, "sortino_ratio", s.Sortino)
	riskFields = appendRatio(riskFields, "treynor_ratio", s.Treynor)
	riskFields = appendRatio(riskFields, "capm_expected_return", s.ExpectedReturn)
	logger.Info("risk-adjusted returns", riskFields...)

	valuationFields := []zap.Field{
		zap.String("symbol", s.Symbol),
	}
	valuationFields = appendRatio(valuationFields, "ev_to_ebitda", s.EVToEBITDA)
	valuationFields = appendRatio(valuationFields, "price_to_book", s.PriceToBook)
	valuationFields = appendRatio(valuationFields, "graham_number", s.GrahamNumber)
	valuationFields = appendRatio(valuationFields, "gordon_intrinsic_value", s.GordonIntrinsicDDM)
	logger.Info("valuation multiples", valuationFields...)

	solvencyFields := []zap.Field{
		zap.String("symbol", s.Symbol),
	}
	solvencyFields = appendRatio(solvencyFields, "altman_z_score", s.AltmanZScore)
	logger.Info("solvency", solvencyFields...)
}

func appendRatio(fields []zap.Field, key string, value float64) []zap.Field {
	if math.IsNaN(value) {
		return fields
	}
	return append(fields, zap.Float64(key, value))
}
