package mart

import (
	"market-marts/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanedRow(symbol string, d int, close float64) model.CleanedOHLCV {
	return model.CleanedOHLCV{
		Symbol:         symbol,
		Date:           day(d),
		Close:          close,
		VolumeMillions: 1.5,
		DailyReturnPct: 0.8,
	}
}

func classifiedRow(symbol string, d int) model.ClassifiedIndicator {
	return model.ClassifiedIndicator{
		Symbol:      symbol,
		Date:        day(d),
		SMA50:       f(95),
		SMA200:      f(90),
		RSI14:       f(60),
		RSISignal:   model.RSINeutral,
		TrendRegime: model.TrendUptrend,
	}
}

func fundamentalRow(symbol string, d int) model.Fundamental {
	return model.Fundamental{
		Symbol:    symbol,
		Date:      day(d),
		MarketCap: f(1e9),
		PERatio:   f(20),
		ROE:       f(0.12),
	}
}

func TestBuildDimStocks_LatestPicksAreIndependent(t *testing.T) {
	now := time.Now()
	cleaned := []model.CleanedOHLCV{
		cleanedRow("AAA", 1, 100),
		cleanedRow("AAA", 3, 110),
	}
	classified := []model.ClassifiedIndicator{
		classifiedRow("AAA", 1),
		classifiedRow("AAA", 2),
	}
	fundamentals := []model.Fundamental{fundamentalRow("AAA", 1)}

	dims := BuildDimStocks(cleaned, classified, fundamentals, now)
	require.Len(t, dims, 1)

	dim := dims[0]
	// The three latest rows come from three different dates.
	assert.Equal(t, day(3), dim.PriceDate)
	require.NotNil(t, dim.IndicatorDate)
	assert.Equal(t, day(2), *dim.IndicatorDate)
	require.NotNil(t, dim.FundamentalDate)
	assert.Equal(t, day(1), *dim.FundamentalDate)
	assert.Equal(t, 110.0, dim.Close)
	assert.Equal(t, now, dim.RefreshedAt)
}

func TestBuildDimStocks_PctFromSMA(t *testing.T) {
	dims := BuildDimStocks(
		[]model.CleanedOHLCV{cleanedRow("AAA", 1, 99)},
		[]model.ClassifiedIndicator{classifiedRow("AAA", 1)},
		nil,
		time.Now(),
	)
	require.Len(t, dims, 1)

	require.NotNil(t, dims[0].PctFromSMA50)
	assert.InDelta(t, (99.0-95.0)/95.0*100, *dims[0].PctFromSMA50, 0.01)
	require.NotNil(t, dims[0].PctFromSMA200)
	assert.Equal(t, 10.0, *dims[0].PctFromSMA200)
}

func TestBuildDimStocks_PctFromSMANullDivisor(t *testing.T) {
	ind := classifiedRow("AAA", 1)
	ind.SMA50 = f(0)
	ind.SMA200 = nil

	dims := BuildDimStocks(
		[]model.CleanedOHLCV{cleanedRow("AAA", 1, 99)},
		[]model.ClassifiedIndicator{ind},
		nil,
		time.Now(),
	)
	require.Len(t, dims, 1)
	assert.Nil(t, dims[0].PctFromSMA50)
	assert.Nil(t, dims[0].PctFromSMA200)
}

func TestBuildDimStocks_StyleCategory(t *testing.T) {
	tests := []struct {
		name string
		pe   *float64
		want string
	}{
		{name: "cheap is value", pe: f(10), want: model.StyleValue},
		{name: "expensive is growth", pe: f(50), want: model.StyleGrowth},
		{name: "middle is blend", pe: f(25), want: model.StyleBlend},
		{name: "boundary 15 is blend", pe: f(15), want: model.StyleBlend},
		{name: "boundary 40 is blend", pe: f(40), want: model.StyleBlend},
		// Missing PE falls through both comparisons into BLEND.
		{name: "missing pe is blend", pe: nil, want: model.StyleBlend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styleCategory(tt.pe))
		})
	}
}

func TestBuildDimStocks_FundamentalHealthScore(t *testing.T) {
	tests := []struct {
		name        string
		roe, de, pe *float64
		want        int
	}{
		{name: "top tier", roe: f(0.20), de: f(0.3), pe: f(20), want: 90},
		{name: "top roe but expensive", roe: f(0.20), de: f(0.3), pe: f(30), want: 70},
		{name: "solid", roe: f(0.12), de: f(0.8), pe: f(30), want: 70},
		{name: "marginal roe only", roe: f(0.08), de: f(2.0), want: 50},
		{name: "weak", roe: f(0.02), want: 30},
		// Null comparands fail their branch and fall through.
		{name: "missing debt equity skips first two tiers", roe: f(0.20), pe: f(20), want: 50},
		{name: "all missing bottoms out", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fundamentalHealthScore(tt.roe, tt.de, tt.pe))
		})
	}
}

func TestBuildDimStocks_Ordering(t *testing.T) {
	fundA := fundamentalRow("AAA", 1) // roe 0.12, no debt/equity -> 50
	fundA.MarketCap = f(5e8)
	fundB := fundamentalRow("BBB", 1) // -> 50
	fundB.MarketCap = f(2e9)
	fundC := fundamentalRow("CCC", 1)
	fundC.ROE = f(0.02) // -> 30
	fundC.MarketCap = nil

	dims := BuildDimStocks(
		[]model.CleanedOHLCV{
			cleanedRow("AAA", 1, 100),
			cleanedRow("BBB", 1, 100),
			cleanedRow("CCC", 1, 100),
			cleanedRow("DDD", 1, 100), // no fundamentals at all -> 30, no cap
		},
		nil,
		[]model.Fundamental{fundA, fundB, fundC},
		time.Now(),
	)
	require.Len(t, dims, 4)

	// Health desc first, then market cap desc with nulls last.
	assert.Equal(t, "BBB", dims[0].Symbol)
	assert.Equal(t, "AAA", dims[1].Symbol)
	assert.Equal(t, "CCC", dims[2].Symbol)
	assert.Equal(t, "DDD", dims[3].Symbol)
}

func TestBuildDimStocks_TieAtMaxDateIsStable(t *testing.T) {
	first := cleanedRow("AAA", 1, 100)
	second := cleanedRow("AAA", 1, 101)

	dims := BuildDimStocks([]model.CleanedOHLCV{first, second}, nil, nil, time.Now())
	require.Len(t, dims, 1)
	// Last row at the max date wins.
	assert.Equal(t, 101.0, dims[0].Close)
}
