package saw_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

func seedCriteria() []saw.Criterion {
	return []saw.Criterion{
		{ID: "c1", Name: "Historical data quality", Weight: 0.35, Type: saw.Benefit},
		{ID: "c2", Name: "Actual performance", Weight: 0.25, Type: saw.Benefit},
		{ID: "c3", Name: "Implementation cost", Weight: 0.2, Type: saw.Cost},
		{ID: "c4", Name: "Potential impact", Weight: 0.2, Type: saw.Benefit},
	}
}

func seedAlternatives() []saw.Alternative {
	return []saw.Alternative{
		{ID: "a1", Name: "Alternative A", Values: map[string]float64{"c1": 0.75, "c2": 0.5, "c3": 0.25, "c4": 0.75}},
		{ID: "a2", Name: "Alternative B", Values: map[string]float64{"c1": 0.5, "c2": 0.25, "c3": 0.25, "c4": 0.5}},
		{ID: "a3", Name: "Alternative C", Values: map[string]float64{"c1": 1, "c2": 0.5, "c3": 0.5, "c4": 0.75}},
	}
}

func rankingIDs(scores []saw.AggregatedScore) []string {
	ids := make([]string, len(scores))
	for i, s := range scores {
		ids[i] = s.AlternativeID
	}
	return ids
}

func TestComputeSingleBenefit(t *testing.T) {
	criteria := []saw.Criterion{{ID: "c1", Name: "Quality", Weight: 1, Type: saw.Benefit}}
	alternatives := []saw.Alternative{
		{ID: "a1", Name: "A", Values: map[string]float64{"c1": 10}},
		{ID: "a2", Name: "B", Values: map[string]float64{"c1": 5}},
	}

	result := saw.Compute(criteria, alternatives)

	require.Len(t, result.WeightSummary, 1)
	assert.Equal(t, 1.0, result.WeightSummary[0].NormalizedWeight)

	assert.Equal(t, 1.0, result.NormalizedMatrix[0].Values.Value("c1"))
	assert.Equal(t, 0.5, result.NormalizedMatrix[1].Values.Value("c1"))
	assert.Equal(t, result.NormalizedMatrix[0].Values, result.WeightedMatrix[0].Values)
	assert.Equal(t, result.NormalizedMatrix[1].Values, result.WeightedMatrix[1].Values)

	assert.Equal(t, []saw.AggregatedScore{
		{AlternativeID: "a1", AlternativeName: "A", Score: 1},
		{AlternativeID: "a2", AlternativeName: "B", Score: 0.5},
	}, result.AggregatedScores)
	assert.Equal(t, []string{"a1", "a2"}, rankingIDs(result.Ranking))
}

func TestComputeZeroWeightFallback(t *testing.T) {
	criteria := []saw.Criterion{
		{ID: "c1", Weight: 0, Type: saw.Benefit},
		{ID: "c2", Weight: 0, Type: saw.Cost},
	}

	result := saw.Compute(criteria, nil)

	require.Len(t, result.WeightSummary, 2)
	for _, ws := range result.WeightSummary {
		assert.Equal(t, 0.5, ws.NormalizedWeight, ws.ID)
	}
}

func TestComputeCostZeroValue(t *testing.T) {
	criteria := []saw.Criterion{{ID: "c1", Weight: 1, Type: saw.Cost}}
	alternatives := []saw.Alternative{
		{ID: "a1", Values: map[string]float64{"c1": 0}},
		{ID: "a2", Values: map[string]float64{"c1": 5}},
	}

	result := saw.Compute(criteria, alternatives)

	ref := result.NormalizationReferences["c1"]
	assert.Equal(t, 0.0, ref.Min)
	assert.Equal(t, 5.0, ref.Max)
	assert.Equal(t, 0.0, result.NormalizedMatrix[0].Values.Value("c1"))
	assert.Equal(t, 0.0, result.NormalizedMatrix[1].Values.Value("c1"))
	for _, s := range result.AggregatedScores {
		assert.Equal(t, 0.0, s.Score, s.AlternativeID)
	}
}

func TestComputeNoAlternatives(t *testing.T) {
	result := saw.Compute(seedCriteria(), []saw.Alternative{})

	require.Len(t, result.NormalizationReferences, 4)
	for id, ref := range result.NormalizationReferences {
		assert.Equal(t, 0.0, ref.Max, id)
		assert.Equal(t, 0.0, ref.Min, id)
	}
	assert.Empty(t, result.DecisionMatrix)
	assert.Empty(t, result.AggregatedScores)
	assert.Empty(t, result.Ranking)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"decisionMatrix":[]`)
	assert.Contains(t, string(data), `"ranking":[]`)
}

func TestComputeNoCriteria(t *testing.T) {
	alternatives := []saw.Alternative{{ID: "a1", Name: "A", Values: map[string]float64{"c1": 3}}}

	result := saw.Compute(nil, alternatives)

	assert.Empty(t, result.WeightSummary)
	require.Len(t, result.DecisionMatrix, 1)
	assert.Empty(t, result.DecisionMatrix[0].Values)
	assert.Equal(t, 0.0, result.AggregatedScores[0].Score)
}

func TestComputeSeedWorkbook(t *testing.T) {
	result := saw.Compute(seedCriteria(), seedAlternatives())

	want := map[string]float64{"a1": 0.9125, "a2": 0.633333, "a3": 0.9}
	for _, s := range result.AggregatedScores {
		assert.Equal(t, want[s.AlternativeID], s.Score, s.AlternativeID)
	}
	assert.Equal(t, []string{"a1", "a3", "a2"}, rankingIDs(result.Ranking))

	// a2 on c4: 0.5 / 0.75 rounds before weighting
	assert.Equal(t, 0.666667, result.NormalizedMatrix[1].Values.Value("c4"))
	assert.Equal(t, 0.133333, result.WeightedMatrix[1].Values.Value("c4"))
}

func TestComputePreservesOrder(t *testing.T) {
	criteria := []saw.Criterion{
		{ID: "z", Weight: 1, Type: saw.Benefit},
		{ID: "a", Weight: 1, Type: saw.Cost},
		{ID: "m", Weight: 1, Type: saw.Benefit},
	}
	alternatives := []saw.Alternative{
		{ID: "x2", Values: map[string]float64{"a": 2}},
		{ID: "x1", Values: map[string]float64{"z": 4, "a": 1, "m": 1, "extra": 9}},
	}

	result := saw.Compute(criteria, alternatives)

	for _, matrix := range [][]saw.MatrixRow{result.DecisionMatrix, result.NormalizedMatrix, result.WeightedMatrix} {
		require.Len(t, matrix, 2)
		assert.Equal(t, "x2", matrix[0].AlternativeID)
		assert.Equal(t, "x1", matrix[1].AlternativeID)
		for _, row := range matrix {
			assert.Equal(t, []string{"z", "a", "m"}, row.Values.Keys())
		}
	}
	assert.Equal(t, "x2", result.AggregatedScores[0].AlternativeID)
	assert.Equal(t, []string{"z", "a", "m"}, referenceIDs(result.ReferenceOrder()))

	data, err := json.Marshal(result.DecisionMatrix[1].Values)
	require.NoError(t, err)
	assert.Equal(t, `{"z":4,"a":1,"m":1}`, string(data))
}

func referenceIDs(refs []saw.NormalizationReference) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.CriterionID
	}
	return ids
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	criteria := seedCriteria()
	alternatives := seedAlternatives()

	_ = saw.Compute(criteria, alternatives)

	assert.Equal(t, seedCriteria(), criteria)
	assert.Equal(t, seedAlternatives(), alternatives)
}

func TestComputeIdempotent(t *testing.T) {
	first, err := json.Marshal(saw.Compute(seedCriteria(), seedAlternatives()))
	require.NoError(t, err)
	second, err := json.Marshal(saw.Compute(seedCriteria(), seedAlternatives()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRankStableForTies(t *testing.T) {
	scores := []saw.AggregatedScore{
		{AlternativeID: "a", Score: 0.5},
		{AlternativeID: "b", Score: 0.7},
		{AlternativeID: "c", Score: 0.5},
		{AlternativeID: "d", Score: 0.7},
		{AlternativeID: "e", Score: 0.5},
	}

	ranking := saw.Rank(scores)

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, rankingIDs(ranking))
	assert.Equal(t, "a", scores[0].AlternativeID, "input must stay untouched")
}

func TestBenefitNormalizationBounds(t *testing.T) {
	criteria := []saw.Criterion{{ID: "c1", Weight: 2, Type: saw.Benefit}}
	alternatives := []saw.Alternative{
		{ID: "a1", Values: map[string]float64{"c1": 3}},
		{ID: "a2", Values: map[string]float64{"c1": 7}},
		{ID: "a3", Values: map[string]float64{"c1": 0}},
		{ID: "a4", Values: map[string]float64{"c1": 6.5}},
	}

	result := saw.Compute(criteria, alternatives)

	for _, row := range result.NormalizedMatrix {
		v := row.Values.Value("c1")
		assert.GreaterOrEqual(t, v, 0.0, row.AlternativeID)
		assert.LessOrEqual(t, v, 1.0, row.AlternativeID)
	}
	assert.Equal(t, 1.0, result.NormalizedMatrix[1].Values.Value("c1"))
}

func TestCostNormalizationBestIsOne(t *testing.T) {
	criteria := []saw.Criterion{{ID: "price", Weight: 1, Type: saw.Cost}}
	alternatives := []saw.Alternative{
		{ID: "a1", Values: map[string]float64{"price": 40}},
		{ID: "a2", Values: map[string]float64{"price": 25}},
		{ID: "a3", Values: map[string]float64{"price": 30}},
	}

	result := saw.Compute(criteria, alternatives)

	assert.Equal(t, 0.625, result.NormalizedMatrix[0].Values.Value("price"))
	assert.Equal(t, 1.0, result.NormalizedMatrix[1].Values.Value("price"))
	assert.Equal(t, 0.833333, result.NormalizedMatrix[2].Values.Value("price"))
	assert.Equal(t, []string{"a2", "a3", "a1"}, rankingIDs(result.Ranking))
}

func TestWeightsSumToOne(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"thirds", []float64{1, 1, 1}},
		{"seed", []float64{0.35, 0.25, 0.2, 0.2}},
		{"uneven", []float64{3, 7, 11, 0, 2.5}},
		{"single", []float64{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var criteria []saw.Criterion
			for i, w := range tt.weights {
				criteria = append(criteria, saw.Criterion{ID: string(rune('a' + i)), Weight: w, Type: saw.Benefit})
			}

			var sum float64
			for _, ws := range saw.NormalizeWeights(criteria) {
				sum += ws.NormalizedWeight
			}
			assert.InDelta(t, 1.0, sum, 1e-5)
		})
	}
}

func TestNormalizeWeightsEmpty(t *testing.T) {
	weights := saw.NormalizeWeights(nil)
	assert.NotNil(t, weights)
	assert.Empty(t, weights)
}

func TestNormalizeWeightsZeroTotalIsUnrounded(t *testing.T) {
	criteria := []saw.Criterion{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	for _, ws := range saw.NormalizeWeights(criteria) {
		assert.Equal(t, 1.0/3, ws.NormalizedWeight)
		assert.Equal(t, 0.0, ws.RawWeight)
	}
}

func TestWeightMatrixFallback(t *testing.T) {
	normalized := []saw.MatrixRow{{
		AlternativeID: "a1",
		Values:        saw.Cells{{CriterionID: "known", Value: 1}, {CriterionID: "orphan", Value: 1}},
	}}
	weights := []saw.WeightSummary{
		{ID: "known", NormalizedWeight: 0.3},
		{ID: "other", NormalizedWeight: 0.7},
	}

	weighted := saw.WeightMatrix(normalized, weights)

	assert.Equal(t, 0.3, weighted[0].Values.Value("known"))
	assert.Equal(t, 0.5, weighted[0].Values.Value("orphan"))
}

func TestNegativeWeightAccepted(t *testing.T) {
	criteria := []saw.Criterion{
		{ID: "a", Weight: -1, Type: saw.Benefit},
		{ID: "b", Weight: 3, Type: saw.Benefit},
	}

	weights := saw.NormalizeWeights(criteria)

	assert.Equal(t, -0.5, weights[0].NormalizedWeight)
	assert.Equal(t, 1.5, weights[1].NormalizedWeight)
}

func TestMissingValuesAreZero(t *testing.T) {
	criteria := []saw.Criterion{{ID: "c1", Weight: 1, Type: saw.Benefit}}
	alternatives := []saw.Alternative{
		{ID: "a1", Values: nil},
		{ID: "a2", Values: map[string]float64{"c1": 4}},
	}

	result := saw.Compute(criteria, alternatives)

	v, ok := result.DecisionMatrix[0].Values.Get("c1")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0.0, result.NormalizationReferences["c1"].Min)
}

func TestNegativeValuesExtremes(t *testing.T) {
	refs := saw.BuildReferences(
		[]saw.Criterion{{ID: "c1", Type: saw.Benefit}},
		[]saw.Alternative{
			{ID: "a1", Values: map[string]float64{"c1": -3}},
			{ID: "a2", Values: map[string]float64{"c1": -1}},
		},
	)

	assert.Equal(t, -1.0, refs["c1"].Max)
	assert.Equal(t, -3.0, refs["c1"].Min)
}

func TestEngineLogsDiagnostics(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	engine := saw.NewEngine(zap.New(core))

	criteria := []saw.Criterion{
		{ID: "c1", Weight: 0, Type: saw.Benefit},
		{ID: "c2", Weight: 0, Type: saw.Cost},
	}
	alternatives := []saw.Alternative{{ID: "a1", Values: map[string]float64{}}}

	result := engine.Compute(criteria, alternatives)

	assert.Equal(t, saw.Compute(criteria, alternatives), result)
	entries := logs.FilterMessage("computed ranking").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["equal_weights"])
	assert.Equal(t, int64(1), fields["zero_cost_values"])
}

func TestNilLoggerEngine(t *testing.T) {
	engine := saw.NewEngine(nil)
	result := engine.Compute(seedCriteria(), seedAlternatives())
	assert.Len(t, result.Ranking, 3)
}

func TestDiagnose(t *testing.T) {
	criteria := []saw.Criterion{
		{ID: "b", Weight: 1, Type: saw.Benefit},
		{ID: "c", Weight: 1, Type: saw.Cost},
	}
	alternatives := []saw.Alternative{
		{ID: "a1", Values: map[string]float64{"b": 0, "c": 0}},
		{ID: "a2", Values: map[string]float64{"b": 0, "c": 2}},
	}

	d := saw.Diagnose(criteria, alternatives)

	assert.Equal(t, 2.0, d.TotalWeight)
	assert.False(t, d.EqualWeights)
	assert.Equal(t, []string{"b"}, d.ZeroMaxBenefit)
	assert.Equal(t, 1, d.ZeroCostValues)
	assert.False(t, math.IsNaN(d.TotalWeight))
}
