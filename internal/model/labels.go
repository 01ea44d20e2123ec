package model

// Gap classification of today's open against yesterday's range.
const (
	GapUp   = "GAP_UP"
	GapDown = "GAP_DOWN"
	NoGap   = "NO_GAP"
)

// RSI signal states.
const (
	RSIOverbought = "OVERBOUGHT"
	RSIOversold   = "OVERSOLD"
	RSINeutral    = "NEUTRAL"
)

// MACD signal states. Crossovers fire only on the day the histogram
// flips sign relative to the prior session.
const (
	MACDBullishCrossover = "BULLISH_CROSSOVER"
	MACDBearishCrossover = "BEARISH_CROSSOVER"
	MACDBullish          = "BULLISH"
	MACDBearish          = "BEARISH"
	MACDNeutral          = "NEUTRAL"
)

// Bollinger band position of the close.
const (
	BBAboveUpper = "ABOVE_UPPER"
	BBBelowLower = "BELOW_LOWER"
	BBUpperHalf  = "UPPER_HALF"
	BBLowerHalf  = "LOWER_HALF"
)

// Trend regimes from the close vs SMA 20/50/200 ordering.
const (
	TrendStrongUptrend   = "STRONG_UPTREND"
	TrendUptrend         = "UPTREND"
	TrendStrongDowntrend = "STRONG_DOWNTREND"
	TrendDowntrend       = "DOWNTREND"
	TrendSideways        = "SIDEWAYS"
)

// Market condition from ADX.
const (
	ConditionTrending = "TRENDING"
	ConditionRanging  = "RANGING"
)

// Scanner confidence levels on gold.signals rows.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// Cross-sectional market phase.
const (
	PhaseBullish       = "BULLISH"
	PhaseBearish       = "BEARISH"
	PhaseConsolidation = "CONSOLIDATION"
	PhaseMixed         = "MIXED"
)

// Style buckets from the PE ratio.
const (
	StyleValue  = "VALUE"
	StyleGrowth = "GROWTH"
	StyleBlend  = "BLEND"
)
