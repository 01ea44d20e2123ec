package staging

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"sort"
)

// ClassifyIndicators assigns the categorical signal states to every raw
// indicator row. Unlike CleanOHLCV nothing is filtered: each input row maps
// to exactly one output row.
//
// Null handling follows the warehouse convention throughout: a comparison
// against a missing value fails that branch and the row falls through to the
// default label.
func ClassifyIndicators(rows []model.IndicatorRow) []model.ClassifiedIndicator {
	sorted := make([]model.IndicatorRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Symbol != sorted[j].Symbol {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	classified := make([]model.ClassifiedIndicator, 0, len(sorted))
	var prevHist *float64
	prevSymbol := ""
	for _, row := range sorted {
		if row.Symbol != prevSymbol {
			prevHist = nil
			prevSymbol = row.Symbol
		}

		classified = append(classified, model.ClassifiedIndicator{
			Symbol:     row.Symbol,
			Date:       row.Date,
			Close:      row.Close,
			Volume:     row.Volume,
			SMA20:      row.SMA20,
			SMA50:      row.SMA50,
			SMA200:     row.SMA200,
			RSI14:      row.RSI14,
			MACDHist:   row.MACDHist,
			ADX14:      row.ADX14,
			ATR14:      row.ATR14,
			Returns20D: row.Returns20D,

			RSISignal:       rsiSignal(row.RSI14),
			MACDSignalType:  macdSignalType(row.MACDHist, prevHist),
			BBPosition:      bbPosition(row),
			TrendRegime:     trendRegime(row),
			MarketCondition: marketCondition(row.ADX14),
			ATRPct:          atrPct(row),
		})
		prevHist = row.MACDHist
	}
	return classified
}

// Boundary values 70 and 30 are NEUTRAL.
func rsiSignal(rsi *float64) string {
	switch {
	case rsi != nil && *rsi > 70:
		return model.RSIOverbought
	case rsi != nil && *rsi < 30:
		return model.RSIOversold
	default:
		return model.RSINeutral
	}
}

// A crossover fires only when the histogram sign flips against the prior
// session. The first row of a symbol has no prior histogram, so it can be
// BULLISH or BEARISH but never a crossover.
func macdSignalType(hist, prevHist *float64) string {
	switch {
	case hist != nil && *hist > 0 && prevHist != nil && *prevHist <= 0:
		return model.MACDBullishCrossover
	case hist != nil && *hist < 0 && prevHist != nil && *prevHist >= 0:
		return model.MACDBearishCrossover
	case hist != nil && *hist > 0:
		return model.MACDBullish
	case hist != nil && *hist < 0:
		return model.MACDBearish
	default:
		return model.MACDNeutral
	}
}

func bbPosition(row model.IndicatorRow) string {
	switch {
	case row.BBUpper != nil && row.Close > *row.BBUpper:
		return model.BBAboveUpper
	case row.BBLower != nil && row.Close < *row.BBLower:
		return model.BBBelowLower
	case row.BBMiddle != nil && row.Close > *row.BBMiddle:
		return model.BBUpperHalf
	default:
		return model.BBLowerHalf
	}
}

// trendRegime classifies the ordering of close vs the 20/50/200 SMAs. The
// STRONG variants require the full chain; the plain variants only the
// longer-horizon pair.
func trendRegime(row model.IndicatorRow) string {
	c := row.Close
	switch {
	case row.SMA20 != nil && row.SMA50 != nil && row.SMA200 != nil &&
		c > *row.SMA20 && *row.SMA20 > *row.SMA50 && *row.SMA50 > *row.SMA200:
		return model.TrendStrongUptrend
	case row.SMA50 != nil && row.SMA200 != nil &&
		c > *row.SMA50 && *row.SMA50 > *row.SMA200:
		return model.TrendUptrend
	case row.SMA20 != nil && row.SMA50 != nil && row.SMA200 != nil &&
		c < *row.SMA20 && *row.SMA20 < *row.SMA50 && *row.SMA50 < *row.SMA200:
		return model.TrendStrongDowntrend
	case row.SMA50 != nil && row.SMA200 != nil &&
		c < *row.SMA50 && *row.SMA50 < *row.SMA200:
		return model.TrendDowntrend
	default:
		return model.TrendSideways
	}
}

func marketCondition(adx *float64) string {
	if adx != nil && *adx > 25 {
		return model.ConditionTrending
	}
	return model.ConditionRanging
}

func atrPct(row model.IndicatorRow) *float64 {
	if row.ATR14 == nil || row.Close == 0 {
		return nil
	}
	return utils.PctOf(*row.ATR14, row.Close)
}
