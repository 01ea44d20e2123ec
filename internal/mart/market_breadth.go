package mart

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"sort"
	"time"
)

type breadthAccumulator struct {
	date  time.Time
	total int

	strongUptrend   int
	uptrend         int
	sideways        int
	downtrend       int
	strongDowntrend int

	overbought       int
	oversold         int
	bullishCrossover int
	bearishCrossover int

	rsiSum, rsiN           float64
	adxSum, adxN           float64
	ret20Sum, ret20N       float64
	dailyRetSum, dailyRetN float64
	volumeMillions         float64
}

// BuildMarketBreadth aggregates the classified indicator universe per date.
// Cleaned OHLCV rows contribute daily_return_pct and volume_millions via a
// left join on (symbol, date); indicator rows without a price row that day
// simply add nothing to those metrics.
func BuildMarketBreadth(classified []model.ClassifiedIndicator, cleaned []model.CleanedOHLCV, now time.Time) []model.MarketBreadth {
	prices := make(map[indicatorKey]*model.CleanedOHLCV, len(cleaned))
	for i := range cleaned {
		prices[keyFor(cleaned[i].Symbol, cleaned[i].Date)] = &cleaned[i]
	}

	byDate := make(map[string]*breadthAccumulator)
	for i := range classified {
		row := &classified[i]
		dk := row.Date.Format("2006-01-02")
		acc := byDate[dk]
		if acc == nil {
			acc = &breadthAccumulator{date: row.Date}
			byDate[dk] = acc
		}
		acc.add(row, prices[keyFor(row.Symbol, row.Date)])
	}

	breadth := make([]model.MarketBreadth, 0, len(byDate))
	for _, acc := range byDate {
		// A date group always holds at least one row; the guard keeps the
		// percentage math total-safe if the accumulator is ever fed directly.
		if acc.total == 0 {
			continue
		}
		breadth = append(breadth, acc.row(now))
	}

	sort.SliceStable(breadth, func(i, j int) bool {
		return breadth[i].Date.After(breadth[j].Date)
	})
	return breadth
}

func (a *breadthAccumulator) add(row *model.ClassifiedIndicator, price *model.CleanedOHLCV) {
	a.total++

	switch row.TrendRegime {
	case model.TrendStrongUptrend:
		a.strongUptrend++
	case model.TrendUptrend:
		a.uptrend++
	case model.TrendStrongDowntrend:
		a.strongDowntrend++
	case model.TrendDowntrend:
		a.downtrend++
	default:
		a.sideways++
	}

	switch row.RSISignal {
	case model.RSIOverbought:
		a.overbought++
	case model.RSIOversold:
		a.oversold++
	}

	switch row.MACDSignalType {
	case model.MACDBullishCrossover:
		a.bullishCrossover++
	case model.MACDBearishCrossover:
		a.bearishCrossover++
	}

	if row.RSI14 != nil {
		a.rsiSum += *row.RSI14
		a.rsiN++
	}
	if row.ADX14 != nil {
		a.adxSum += *row.ADX14
		a.adxN++
	}
	if row.Returns20D != nil {
		a.ret20Sum += *row.Returns20D
		a.ret20N++
	}
	if price != nil {
		a.dailyRetSum += price.DailyReturnPct
		a.dailyRetN++
		a.volumeMillions += price.VolumeMillions
	}
}

func (a *breadthAccumulator) row(now time.Time) model.MarketBreadth {
	total := float64(a.total)
	return model.MarketBreadth{
		Date:        a.date,
		TotalStocks: a.total,

		StrongUptrendCount:   a.strongUptrend,
		UptrendCount:         a.uptrend,
		SidewaysCount:        a.sideways,
		DowntrendCount:       a.downtrend,
		StrongDowntrendCount: a.strongDowntrend,

		OverboughtCount:       a.overbought,
		OversoldCount:         a.oversold,
		BullishCrossoverCount: a.bullishCrossover,
		BearishCrossoverCount: a.bearishCrossover,

		PctInUptrend:   utils.RoundTo(float64(a.strongUptrend+a.uptrend)/total*100, 2),
		PctInDowntrend: utils.RoundTo(float64(a.strongDowntrend+a.downtrend)/total*100, 2),
		PctOverbought:  utils.RoundTo(float64(a.overbought)/total*100, 2),
		PctOversold:    utils.RoundTo(float64(a.oversold)/total*100, 2),

		AvgRSI14:          avg(a.rsiSum, a.rsiN),
		AvgADX14:          avg(a.adxSum, a.adxN),
		AvgReturns20D:     avg(a.ret20Sum, a.ret20N),
		AvgDailyReturnPct: avg(a.dailyRetSum, a.dailyRetN),

		TotalVolumeMillions: utils.RoundTo(a.volumeMillions, 2),

		MarketHealthScore: a.healthScore(),
		MarketPhase:       a.phase(),

		RefreshedAt: now,
	}
}

// healthScore is the weighted signed breadth oscillator, scaled so an
// all-strong-uptrend date lands at 100 and an all-strong-downtrend date
// at -100.
func (a *breadthAccumulator) healthScore() float64 {
	weighted := 5*a.strongUptrend + 3*a.uptrend - 2*a.downtrend - 5*a.strongDowntrend
	return utils.RoundTo(float64(weighted)*100/(float64(a.total)*5), 2)
}

// phase is first-match: a directional phase wins over CONSOLIDATION even when
// more than 40% of the universe is sideways.
func (a *breadthAccumulator) phase() string {
	switch {
	case a.strongUptrend > a.downtrend+a.strongDowntrend:
		return model.PhaseBullish
	case a.strongDowntrend > a.uptrend+a.strongUptrend:
		return model.PhaseBearish
	case float64(a.sideways) > 0.4*float64(a.total):
		return model.PhaseConsolidation
	default:
		return model.PhaseMixed
	}
}

func avg(sum, n float64) *float64 {
	if n == 0 {
		return nil
	}
	return utils.ToPointer(utils.RoundTo(sum/n, 2))
}
