package staging

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return utils.ToPointer(v)
}

func indicatorRow(symbol string, d int) model.IndicatorRow {
	return model.IndicatorRow{Symbol: symbol, Date: time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)}
}

func classifyOne(row model.IndicatorRow) model.ClassifiedIndicator {
	classified := ClassifyIndicators([]model.IndicatorRow{row})
	return classified[0]
}

func TestClassifyIndicators_RSISignal(t *testing.T) {
	tests := []struct {
		name string
		rsi  *float64
		want string
	}{
		{name: "overbought", rsi: f(75), want: model.RSIOverbought},
		{name: "oversold", rsi: f(25), want: model.RSIOversold},
		{name: "neutral", rsi: f(50), want: model.RSINeutral},
		{name: "boundary 70 is neutral", rsi: f(70), want: model.RSINeutral},
		{name: "boundary 30 is neutral", rsi: f(30), want: model.RSINeutral},
		{name: "missing rsi is neutral", rsi: nil, want: model.RSINeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := indicatorRow("AAA", 1)
			row.RSI14 = tt.rsi
			assert.Equal(t, tt.want, classifyOne(row).RSISignal)
		})
	}
}

func TestClassifyIndicators_MACDSignalType(t *testing.T) {
	tests := []struct {
		name     string
		hist     *float64
		prevHist *float64
		want     string
	}{
		{name: "bullish crossover", hist: f(0.5), prevHist: f(-0.2), want: model.MACDBullishCrossover},
		{name: "bullish crossover from zero", hist: f(0.5), prevHist: f(0), want: model.MACDBullishCrossover},
		{name: "bearish crossover", hist: f(-0.5), prevHist: f(0.2), want: model.MACDBearishCrossover},
		{name: "bearish crossover from zero", hist: f(-0.5), prevHist: f(0), want: model.MACDBearishCrossover},
		{name: "bullish continuation", hist: f(0.5), prevHist: f(0.4), want: model.MACDBullish},
		{name: "bearish continuation", hist: f(-0.5), prevHist: f(-0.4), want: model.MACDBearish},
		{name: "zero histogram is neutral", hist: f(0), prevHist: f(0.4), want: model.MACDNeutral},
		{name: "missing histogram is neutral", hist: nil, prevHist: f(0.4), want: model.MACDNeutral},
		// First row of a symbol: no prior histogram, so no crossover.
		{name: "positive without predecessor", hist: f(0.5), prevHist: nil, want: model.MACDBullish},
		{name: "negative without predecessor", hist: f(-0.5), prevHist: nil, want: model.MACDBearish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []model.IndicatorRow{}
			if tt.prevHist != nil {
				prev := indicatorRow("AAA", 1)
				prev.MACDHist = tt.prevHist
				rows = append(rows, prev)
			}
			cur := indicatorRow("AAA", 2)
			cur.MACDHist = tt.hist
			rows = append(rows, cur)

			classified := ClassifyIndicators(rows)
			assert.Equal(t, tt.want, classified[len(classified)-1].MACDSignalType)
		})
	}
}

func TestClassifyIndicators_CrossoverDoesNotLeakAcrossSymbols(t *testing.T) {
	prev := indicatorRow("AAA", 1)
	prev.MACDHist = f(-1)
	cur := indicatorRow("BBB", 2)
	cur.MACDHist = f(1)

	classified := ClassifyIndicators([]model.IndicatorRow{prev, cur})
	require.Len(t, classified, 2)
	assert.Equal(t, model.MACDBullish, classified[1].MACDSignalType)
}

func TestClassifyIndicators_BBPosition(t *testing.T) {
	tests := []struct {
		name                 string
		close                float64
		upper, middle, lower *float64
		want                 string
	}{
		{name: "above upper", close: 111, upper: f(110), middle: f(100), lower: f(90), want: model.BBAboveUpper},
		{name: "below lower", close: 89, upper: f(110), middle: f(100), lower: f(90), want: model.BBBelowLower},
		{name: "upper half", close: 105, upper: f(110), middle: f(100), lower: f(90), want: model.BBUpperHalf},
		{name: "lower half", close: 95, upper: f(110), middle: f(100), lower: f(90), want: model.BBLowerHalf},
		{name: "missing bands fall to lower half", close: 105, want: model.BBLowerHalf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := indicatorRow("AAA", 1)
			row.Close = tt.close
			row.BBUpper = tt.upper
			row.BBMiddle = tt.middle
			row.BBLower = tt.lower
			assert.Equal(t, tt.want, classifyOne(row).BBPosition)
		})
	}
}

func TestClassifyIndicators_TrendRegime(t *testing.T) {
	tests := []struct {
		name                 string
		close                float64
		sma20, sma50, sma200 *float64
		want                 string
	}{
		{name: "strong uptrend", close: 120, sma20: f(110), sma50: f(105), sma200: f(100), want: model.TrendStrongUptrend},
		{name: "uptrend without short chain", close: 120, sma20: f(125), sma50: f(105), sma200: f(100), want: model.TrendUptrend},
		{name: "strong downtrend", close: 50, sma20: f(55), sma50: f(60), sma200: f(65), want: model.TrendStrongDowntrend},
		{name: "downtrend without short chain", close: 50, sma20: f(45), sma50: f(60), sma200: f(65), want: model.TrendDowntrend},
		{name: "sideways", close: 100, sma20: f(101), sma50: f(99), sma200: f(102), want: model.TrendSideways},
		{name: "missing sma200 is sideways", close: 120, sma20: f(110), sma50: f(105), want: model.TrendSideways},
		{name: "all missing is sideways", close: 120, want: model.TrendSideways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := indicatorRow("AAA", 1)
			row.Close = tt.close
			row.SMA20 = tt.sma20
			row.SMA50 = tt.sma50
			row.SMA200 = tt.sma200
			assert.Equal(t, tt.want, classifyOne(row).TrendRegime)
		})
	}
}

func TestClassifyIndicators_MarketConditionAndATRPct(t *testing.T) {
	row := indicatorRow("AAA", 1)
	row.Close = 50
	row.ADX14 = f(26)
	row.ATR14 = f(2)

	got := classifyOne(row)
	assert.Equal(t, model.ConditionTrending, got.MarketCondition)
	require.NotNil(t, got.ATRPct)
	assert.Equal(t, 4.0, *got.ATRPct)

	row.ADX14 = f(25)
	row.ATR14 = nil
	got = classifyOne(row)
	assert.Equal(t, model.ConditionRanging, got.MarketCondition)
	assert.Nil(t, got.ATRPct)
}

func TestClassifyIndicators_IsTotal(t *testing.T) {
	// No filtering: every input row maps to exactly one classified row, even
	// a row with nothing but symbol and date.
	rows := []model.IndicatorRow{
		indicatorRow("AAA", 1),
		indicatorRow("AAA", 2),
		indicatorRow("BBB", 1),
	}
	classified := ClassifyIndicators(rows)
	require.Len(t, classified, len(rows))
	for _, c := range classified {
		assert.NotEmpty(t, c.RSISignal)
		assert.NotEmpty(t, c.MACDSignalType)
		assert.NotEmpty(t, c.BBPosition)
		assert.NotEmpty(t, c.TrendRegime)
		assert.NotEmpty(t, c.MarketCondition)
	}
}
