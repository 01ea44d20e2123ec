// Package staging holds the view-level transforms between the warehouse
// zones and the marts. Both transforms are pure: they are recomputed from
// source rows on every pipeline run and never persisted.
package staging

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"sort"
)

// CleanOHLCV filters raw bars through the price sanity invariant and derives
// the daily metrics. Rows failing the invariant are dropped silently; drop
// auditing belongs to the ingestion side.
//
// TrueRange and GapType need the previous session of the same symbol, taken
// over the filtered sequence: an invalid row does not act as predecessor for
// the row after it.
func CleanOHLCV(bars []model.OHLCVBar) []model.CleanedOHLCV {
	sorted := make([]model.OHLCVBar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Symbol != sorted[j].Symbol {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cleaned := make([]model.CleanedOHLCV, 0, len(sorted))
	var prev *model.OHLCVBar
	for i := range sorted {
		bar := sorted[i]
		if prev != nil && prev.Symbol != bar.Symbol {
			prev = nil
		}
		if !validBar(bar) {
			continue
		}

		row := model.CleanedOHLCV{
			Symbol:   bar.Symbol,
			Date:     bar.Date,
			Open:     bar.Open,
			High:     bar.High,
			Low:      bar.Low,
			Close:    bar.Close,
			Volume:   bar.Volume,
			Exchange: bar.Exchange,

			DailyReturnPct:       utils.RoundTo((bar.Close-bar.Open)/bar.Open*100, 2),
			DailyRangePct:        utils.RoundTo((bar.High-bar.Low)/bar.Low*100, 2),
			VolumeMillions:       utils.RoundTo(float64(bar.Volume)/1_000_000, 2),
			ClosePositionInRange: closePosition(bar),
			TrueRange:            trueRange(bar, prev),
			GapType:              gapType(bar, prev),
		}
		cleaned = append(cleaned, row)
		prev = &sorted[i]
	}
	return cleaned
}

// validBar enforces the staging filter: strictly positive prices and volume,
// high at the top of the range and low at the bottom.
func validBar(b model.OHLCVBar) bool {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 || b.Volume <= 0 {
		return false
	}
	if b.High < b.Low || b.High < b.Open || b.High < b.Close {
		return false
	}
	if b.Low > b.Open || b.Low > b.Close {
		return false
	}
	return true
}

// closePosition locates the close within the day's range: 0 at the low, 1 at
// the high, 0.5 when the bar has no range.
func closePosition(b model.OHLCVBar) float64 {
	if b.High == b.Low {
		return 0.5
	}
	return (b.Close - b.Low) / (b.High - b.Low)
}

func trueRange(b model.OHLCVBar, prev *model.OHLCVBar) *float64 {
	if prev == nil {
		return nil
	}
	tr := b.High - b.Low
	if hc := abs(b.High - prev.Close); hc > tr {
		tr = hc
	}
	if lc := abs(b.Low - prev.Close); lc > tr {
		tr = lc
	}
	return utils.ToPointer(utils.RoundTo(tr, 2))
}

func gapType(b model.OHLCVBar, prev *model.OHLCVBar) string {
	if prev == nil {
		return model.NoGap
	}
	switch {
	case b.Open > prev.High:
		return model.GapUp
	case b.Open < prev.Low:
		return model.GapDown
	default:
		return model.NoGap
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
