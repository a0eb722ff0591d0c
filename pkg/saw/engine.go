package saw

import "go.uber.org/zap"

// Compute runs the full SAW pipeline over a snapshot of criteria and
// alternatives. It never fails: empty inputs, zero weights and zero divisors
// all resolve to defined values.
func Compute(criteria []Criterion, alternatives []Alternative) *Result {
	weights := NormalizeWeights(criteria)
	refs := BuildReferences(criteria, alternatives)

	decision := DecisionMatrix(criteria, alternatives)
	normalized := NormalizeMatrix(decision, refs)
	weighted := WeightMatrix(normalized, weights)
	scores := Aggregate(weighted)

	return &Result{
		WeightSummary:           weights,
		DecisionMatrix:          decision,
		NormalizedMatrix:        normalized,
		WeightedMatrix:          weighted,
		AggregatedScores:        scores,
		Ranking:                 Rank(scores),
		NormalizationReferences: refs,
	}
}

// Engine runs Compute and records what degenerate branches the input hit.
// Logging never affects the result.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Compute ranks the snapshot. See the package-level Compute.
func (e *Engine) Compute(criteria []Criterion, alternatives []Alternative) *Result {
	result := Compute(criteria, alternatives)

	d := Diagnose(criteria, alternatives)
	e.logger.Debug("computed ranking",
		zap.Int("criteria", len(criteria)),
		zap.Int("alternatives", len(alternatives)),
		zap.Float64("total_weight", d.TotalWeight),
		zap.Bool("equal_weights", d.EqualWeights),
		zap.Strings("zero_max_benefit", d.ZeroMaxBenefit),
		zap.Int("zero_cost_values", d.ZeroCostValues),
	)
	if len(result.Ranking) > 0 {
		e.logger.Debug("leader",
			zap.String("alternative", result.Ranking[0].AlternativeID),
			zap.Float64("score", result.Ranking[0].Score),
		)
	}
	return result
}

// Diagnostics lists the fallback paths a snapshot triggers.
type Diagnostics struct {
	TotalWeight float64
	// EqualWeights is set when the total weight is zero and every criterion
	// received 1/N.
	EqualWeights bool
	// ZeroMaxBenefit holds benefit criteria whose column max is 0.
	ZeroMaxBenefit []string
	// ZeroCostValues counts cost cells that normalized to 0 because the raw
	// value was 0.
	ZeroCostValues int
}

// Diagnose reports the degenerate cases Compute resolves silently.
func Diagnose(criteria []Criterion, alternatives []Alternative) Diagnostics {
	var d Diagnostics
	for _, c := range criteria {
		d.TotalWeight += c.Weight
	}
	d.EqualWeights = len(criteria) > 0 && d.TotalWeight == 0

	refs := BuildReferences(criteria, alternatives)
	for _, c := range criteria {
		if c.Type == Benefit {
			if refs[c.ID].Max == 0 {
				d.ZeroMaxBenefit = append(d.ZeroMaxBenefit, c.ID)
			}
			continue
		}
		for _, alt := range alternatives {
			if alt.Values[c.ID] == 0 {
				d.ZeroCostValues++
			}
		}
	}
	return d
}
