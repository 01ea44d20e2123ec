package mart

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"sort"
	"time"
)

// BuildDimStocks builds the one-row-per-symbol dimension. Each of the three
// feeds contributes its own latest-dated row per symbol, picked
// independently, then left-joined on symbol with the price feed as the base.
// When a symbol carries several rows at its max date, the last one in
// (symbol, date) order wins; the pick is stable across runs.
func BuildDimStocks(cleaned []model.CleanedOHLCV, classified []model.ClassifiedIndicator, fundamentals []model.Fundamental, now time.Time) []model.DimStock {
	latestPrice := latestCleanedBySymbol(cleaned)
	latestInd := latestClassifiedBySymbol(classified)
	latestFund := latestFundamentalBySymbol(fundamentals)

	dims := make([]model.DimStock, 0, len(latestPrice))
	for _, price := range latestPrice {
		dim := model.DimStock{
			Symbol:         price.Symbol,
			PriceDate:      price.Date,
			Close:          price.Close,
			VolumeMillions: price.VolumeMillions,
			DailyReturnPct: price.DailyReturnPct,
			RefreshedAt:    now,
		}

		if ind := latestInd[price.Symbol]; ind != nil {
			dim.IndicatorDate = utils.ToPointer(ind.Date)
			dim.SMA50 = ind.SMA50
			dim.SMA200 = ind.SMA200
			dim.RSI14 = ind.RSI14
			dim.RSISignal = utils.ToPointer(ind.RSISignal)
			dim.TrendRegime = utils.ToPointer(ind.TrendRegime)
			dim.PctFromSMA50 = utils.PctChangeFrom(ind.SMA50, price.Close)
			dim.PctFromSMA200 = utils.PctChangeFrom(ind.SMA200, price.Close)
		}

		if fund := latestFund[price.Symbol]; fund != nil {
			dim.FundamentalDate = utils.ToPointer(fund.Date)
			dim.MarketCap = fund.MarketCap
			dim.PERatio = fund.PERatio
			dim.PBRatio = fund.PBRatio
			dim.ROE = fund.ROE
			dim.DebtEquity = fund.DebtEquity
			dim.RevenueGrowth = fund.RevenueGrowth
			dim.ProfitGrowth = fund.ProfitGrowth
		}

		dim.StyleCategory = styleCategory(dim.PERatio)
		dim.FundamentalHealthScore = fundamentalHealthScore(dim.ROE, dim.DebtEquity, dim.PERatio)

		dims = append(dims, dim)
	}

	// Health first, then size; symbols without a market cap sort last.
	sort.SliceStable(dims, func(i, j int) bool {
		if dims[i].FundamentalHealthScore != dims[j].FundamentalHealthScore {
			return dims[i].FundamentalHealthScore > dims[j].FundamentalHealthScore
		}
		ci, cj := dims[i].MarketCap, dims[j].MarketCap
		switch {
		case ci != nil && cj != nil && *ci != *cj:
			return *ci > *cj
		case ci != nil && cj == nil:
			return true
		case ci == nil && cj != nil:
			return false
		}
		return dims[i].Symbol < dims[j].Symbol
	})
	return dims
}

func latestCleanedBySymbol(rows []model.CleanedOHLCV) []model.CleanedOHLCV {
	idx := make(map[string]int)
	var order []string
	for i := range rows {
		row := rows[i]
		at, seen := idx[row.Symbol]
		if !seen {
			idx[row.Symbol] = i
			order = append(order, row.Symbol)
			continue
		}
		if !rows[at].Date.After(row.Date) {
			idx[row.Symbol] = i
		}
	}
	sort.Strings(order)
	latest := make([]model.CleanedOHLCV, 0, len(order))
	for _, sym := range order {
		latest = append(latest, rows[idx[sym]])
	}
	return latest
}

func latestClassifiedBySymbol(rows []model.ClassifiedIndicator) map[string]*model.ClassifiedIndicator {
	latest := make(map[string]*model.ClassifiedIndicator)
	for i := range rows {
		row := &rows[i]
		cur, seen := latest[row.Symbol]
		if !seen || !cur.Date.After(row.Date) {
			latest[row.Symbol] = row
		}
	}
	return latest
}

func latestFundamentalBySymbol(rows []model.Fundamental) map[string]*model.Fundamental {
	latest := make(map[string]*model.Fundamental)
	for i := range rows {
		row := &rows[i]
		cur, seen := latest[row.Symbol]
		if !seen || !cur.Date.After(row.Date) {
			latest[row.Symbol] = row
		}
	}
	return latest
}

// styleCategory buckets by PE: cheap is VALUE, expensive is GROWTH, anything
// else including a missing PE is BLEND.
func styleCategory(pe *float64) string {
	switch {
	case pe != nil && *pe < 15:
		return model.StyleValue
	case pe != nil && *pe > 40:
		return model.StyleGrowth
	default:
		return model.StyleBlend
	}
}

// fundamentalHealthScore is a first-match rule table. Any missing comparand
// fails its branch, so a symbol with no fundamentals bottoms out at 30.
func fundamentalHealthScore(roe, debtEquity, pe *float64) int {
	switch {
	case roe != nil && *roe > 0.15 && debtEquity != nil && *debtEquity < 0.5 && pe != nil && *pe < 25:
		return 90
	case roe != nil && *roe > 0.10 && debtEquity != nil && *debtEquity < 1.0:
		return 70
	case roe != nil && *roe > 0.05:
		return 50
	default:
		return 30
	}
}
