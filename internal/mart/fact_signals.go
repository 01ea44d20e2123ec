// Package mart builds the persisted business-level tables from the staging
// views. Builders are pure; persistence is the repositories' job.
package mart

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"sort"
	"time"
)

type indicatorKey struct {
	symbol string
	date   string
}

func keyFor(symbol string, date time.Time) indicatorKey {
	return indicatorKey{symbol: symbol, date: date.Format("2006-01-02")}
}

// BuildFactSignals left-joins scanner signals with the classified indicator
// row at the exact (symbol, date). Signals without indicator context keep
// null context columns rather than being dropped.
//
// watermark is the max date already persisted in fact_signals; only signals
// dated strictly after it are emitted. A nil watermark means no prior state
// and emits full history.
func BuildFactSignals(signals []model.Signal, classified []model.ClassifiedIndicator, watermark *time.Time) []model.FactSignal {
	context := make(map[indicatorKey]*model.ClassifiedIndicator, len(classified))
	for i := range classified {
		context[keyFor(classified[i].Symbol, classified[i].Date)] = &classified[i]
	}

	facts := make([]model.FactSignal, 0, len(signals))
	for _, sig := range signals {
		if watermark != nil && !sig.Date.After(*watermark) {
			continue
		}

		fact := model.FactSignal{
			Symbol:        sig.Symbol,
			Date:          sig.Date,
			Strategy:      sig.Strategy,
			Signal:        sig.Signal,
			Entry:         sig.Entry,
			Stop:          sig.Stop,
			Target:        sig.Target,
			RiskReward:    sig.RiskReward,
			Confidence:    sig.Confidence,
			ScanTimestamp: sig.ScanTimestamp,
			Details:       sig.Details,

			PotentialReturnPct: returnPct(sig.Entry, sig.Target),
			RiskPct:            riskPct(sig.Entry, sig.Stop),
		}

		ind := context[keyFor(sig.Symbol, sig.Date)]
		if ind != nil {
			fact.RSI14 = ind.RSI14
			fact.RSISignal = utils.ToPointer(ind.RSISignal)
			fact.MACDSignalType = utils.ToPointer(ind.MACDSignalType)
			fact.TrendRegime = utils.ToPointer(ind.TrendRegime)
			fact.MarketCondition = utils.ToPointer(ind.MarketCondition)
			fact.ATRPct = ind.ATRPct
		}
		fact.QualityScore = qualityScore(sig.Confidence, fact.RSISignal, fact.TrendRegime)

		facts = append(facts, fact)
	}

	// Presentation contract: newest first, best score first, symbol for ties.
	sort.SliceStable(facts, func(i, j int) bool {
		if !facts[i].Date.Equal(facts[j].Date) {
			return facts[i].Date.After(facts[j].Date)
		}
		if facts[i].QualityScore != facts[j].QualityScore {
			return facts[i].QualityScore > facts[j].QualityScore
		}
		return facts[i].Symbol < facts[j].Symbol
	})
	return facts
}

func returnPct(entry, target *float64) *float64 {
	if entry == nil || *entry == 0 || target == nil {
		return nil
	}
	return utils.PctOf(*target-*entry, *entry)
}

func riskPct(entry, stop *float64) *float64 {
	if entry == nil || *entry == 0 || stop == nil {
		return nil
	}
	return utils.PctOf(*entry-*stop, *entry)
}

// qualityScore is a strict first-match rule table. A null comparand fails its
// branch: a HIGH-confidence signal with no rsi context scores 2, not 3.
func qualityScore(confidence string, rsiSignal, trendRegime *string) int {
	switch {
	case confidence == model.ConfidenceHigh && rsiSignal != nil && *rsiSignal != model.RSIOverbought:
		return 3
	case confidence == model.ConfidenceHigh:
		return 2
	case confidence == model.ConfidenceMedium && trendRegime != nil &&
		(*trendRegime == model.TrendStrongUptrend || *trendRegime == model.TrendUptrend):
		return 2
	case confidence == model.ConfidenceMedium:
		return 1
	default:
		return 0
	}
}
