package mart

import (
	"market-marts/internal/model"
	"market-marts/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func f(v float64) *float64 {
	return utils.ToPointer(v)
}

func signal(symbol string, d int, confidence string) model.Signal {
	return model.Signal{
		Symbol:     symbol,
		Date:       day(d),
		Strategy:   "stage2",
		Signal:     "BUY",
		Entry:      f(100),
		Stop:       f(95),
		Target:     f(115),
		Confidence: confidence,
	}
}

func contextRow(symbol string, d int, rsiSignal, trendRegime string) model.ClassifiedIndicator {
	return model.ClassifiedIndicator{
		Symbol:      symbol,
		Date:        day(d),
		RSI14:       f(55),
		RSISignal:   rsiSignal,
		TrendRegime: trendRegime,
	}
}

func TestBuildFactSignals_JoinAndDerived(t *testing.T) {
	signals := []model.Signal{signal("AAA", 1, model.ConfidenceHigh)}
	classified := []model.ClassifiedIndicator{contextRow("AAA", 1, model.RSINeutral, model.TrendUptrend)}

	facts := BuildFactSignals(signals, classified, nil)
	require.Len(t, facts, 1)

	fact := facts[0]
	require.NotNil(t, fact.RSISignal)
	assert.Equal(t, model.RSINeutral, *fact.RSISignal)
	require.NotNil(t, fact.PotentialReturnPct)
	assert.Equal(t, 15.0, *fact.PotentialReturnPct)
	require.NotNil(t, fact.RiskPct)
	assert.Equal(t, 5.0, *fact.RiskPct)
}

func TestBuildFactSignals_UnmatchedSignalKeepsNullContext(t *testing.T) {
	signals := []model.Signal{signal("AAA", 1, model.ConfidenceHigh)}
	classified := []model.ClassifiedIndicator{contextRow("AAA", 2, model.RSINeutral, model.TrendUptrend)}

	facts := BuildFactSignals(signals, classified, nil)
	require.Len(t, facts, 1)

	// Different date, no context: the signal survives with null columns.
	assert.Nil(t, facts[0].RSISignal)
	assert.Nil(t, facts[0].TrendRegime)
	assert.Nil(t, facts[0].ATRPct)
}

func TestBuildFactSignals_EntryZeroPropagatesNull(t *testing.T) {
	sig := signal("AAA", 1, model.ConfidenceHigh)
	sig.Entry = f(0)

	facts := BuildFactSignals([]model.Signal{sig}, nil, nil)
	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].PotentialReturnPct)
	assert.Nil(t, facts[0].RiskPct)

	sig.Entry = nil
	facts = BuildFactSignals([]model.Signal{sig}, nil, nil)
	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].PotentialReturnPct)
}

func TestBuildFactSignals_QualityScore(t *testing.T) {
	tests := []struct {
		name        string
		confidence  string
		rsiSignal   *string
		trendRegime *string
		want        int
	}{
		{name: "high not overbought", confidence: model.ConfidenceHigh, rsiSignal: utils.ToPointer(model.RSINeutral), want: 3},
		{name: "high overbought", confidence: model.ConfidenceHigh, rsiSignal: utils.ToPointer(model.RSIOverbought), want: 2},
		{name: "high without context", confidence: model.ConfidenceHigh, want: 2},
		{name: "medium in strong uptrend", confidence: model.ConfidenceMedium, trendRegime: utils.ToPointer(model.TrendStrongUptrend), want: 2},
		{name: "medium in uptrend", confidence: model.ConfidenceMedium, trendRegime: utils.ToPointer(model.TrendUptrend), want: 2},
		{name: "medium sideways", confidence: model.ConfidenceMedium, trendRegime: utils.ToPointer(model.TrendSideways), want: 1},
		{name: "medium without context", confidence: model.ConfidenceMedium, want: 1},
		{name: "low", confidence: model.ConfidenceLow, want: 0},
		{name: "unknown confidence", confidence: "SPECULATIVE", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qualityScore(tt.confidence, tt.rsiSignal, tt.trendRegime)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 3)
		})
	}
}

func TestBuildFactSignals_ScoreMatchesPersistedContext(t *testing.T) {
	signals := []model.Signal{
		signal("AAA", 1, model.ConfidenceHigh),
		signal("BBB", 1, model.ConfidenceMedium),
		signal("CCC", 1, model.ConfidenceLow),
	}
	classified := []model.ClassifiedIndicator{
		contextRow("AAA", 1, model.RSIOverbought, model.TrendSideways),
		contextRow("BBB", 1, model.RSINeutral, model.TrendStrongUptrend),
	}

	facts := BuildFactSignals(signals, classified, nil)
	require.Len(t, facts, 3)

	// Re-deriving the score from the persisted context reproduces it.
	for _, fact := range facts {
		assert.Equal(t, qualityScore(fact.Confidence, fact.RSISignal, fact.TrendRegime), fact.QualityScore)
	}
}

func TestBuildFactSignals_Watermark(t *testing.T) {
	signals := []model.Signal{
		signal("AAA", 1, model.ConfidenceHigh),
		signal("AAA", 2, model.ConfidenceHigh),
		signal("AAA", 3, model.ConfidenceHigh),
	}

	t.Run("no prior state emits full history", func(t *testing.T) {
		facts := BuildFactSignals(signals, nil, nil)
		assert.Len(t, facts, 3)
	})

	t.Run("only rows strictly after the watermark", func(t *testing.T) {
		watermark := day(2)
		facts := BuildFactSignals(signals, nil, &watermark)
		require.Len(t, facts, 1)
		assert.Equal(t, day(3), facts[0].Date)
	})

	t.Run("rerun with no new data emits nothing", func(t *testing.T) {
		watermark := day(3)
		facts := BuildFactSignals(signals, nil, &watermark)
		assert.Empty(t, facts)
	})
}

func TestBuildFactSignals_Ordering(t *testing.T) {
	signals := []model.Signal{
		signal("ZZZ", 1, model.ConfidenceLow),
		signal("AAA", 2, model.ConfidenceMedium),
		signal("BBB", 2, model.ConfidenceHigh),
		signal("AAA", 1, model.ConfidenceHigh),
	}
	classified := []model.ClassifiedIndicator{
		contextRow("BBB", 2, model.RSINeutral, model.TrendUptrend),
		contextRow("AAA", 1, model.RSINeutral, model.TrendUptrend),
	}

	facts := BuildFactSignals(signals, classified, nil)
	require.Len(t, facts, 4)

	// date desc, then quality desc, then symbol asc
	assert.Equal(t, "BBB", facts[0].Symbol)
	assert.Equal(t, day(2), facts[0].Date)
	assert.Equal(t, "AAA", facts[1].Symbol)
	assert.Equal(t, day(2), facts[1].Date)
	assert.Equal(t, "AAA", facts[2].Symbol)
	assert.Equal(t, 3, facts[2].QualityScore)
	assert.Equal(t, "ZZZ", facts[3].Symbol)
}
