// Package saw implements the Simple Additive Weighting (SAW) ranking engine.
// It turns a snapshot of criteria and alternatives into normalized weights,
// normalized and weighted decision matrices, crisp scores and a ranking.
//
// Every function in this package is pure: inputs are never modified and each
// call allocates a fresh result.
package saw

// CriterionType tells the normalizer which direction is better.
type CriterionType string

const (
	// Benefit criteria prefer higher raw values.
	Benefit CriterionType = "benefit"
	// Cost criteria prefer lower raw values.
	Cost CriterionType = "cost"
)

// Criterion is one weighted decision criterion.
type Criterion struct {
	ID     string        `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Weight float64       `json:"weight" yaml:"weight"`
	Type   CriterionType `json:"type" yaml:"type"`
}

// Alternative is one candidate being ranked. Values maps criterion ID to the
// raw score; a missing entry counts as 0.
type Alternative struct {
	ID     string             `json:"id" yaml:"id"`
	Name   string             `json:"name" yaml:"name"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// WeightSummary reports a criterion's raw and normalized weight.
type WeightSummary struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	RawWeight        float64       `json:"rawWeight"`
	NormalizedWeight float64       `json:"normalizedWeight"`
	Type             CriterionType `json:"type"`
}

// NormalizationReference holds the column extremes used to normalize one
// criterion. It is derived from the alternative set of a single call.
type NormalizationReference struct {
	CriterionID   string        `json:"criterionId"`
	CriterionName string        `json:"criterionName"`
	Max           float64       `json:"max"`
	Min           float64       `json:"min"`
	Type          CriterionType `json:"type"`
}

// MatrixRow is one alternative's row in a decision matrix.
type MatrixRow struct {
	AlternativeID   string `json:"alternativeId"`
	AlternativeName string `json:"alternativeName"`
	Values          Cells  `json:"values"`
}

// AggregatedScore is the crisp SAW score of one alternative.
type AggregatedScore struct {
	AlternativeID   string  `json:"alternativeId"`
	AlternativeName string  `json:"alternativeName"`
	Score           float64 `json:"score"`
}

// Result is the complete output of one engine run.
// All matrices and AggregatedScores share the input alternative order;
// Ranking is AggregatedScores sorted by score, descending.
type Result struct {
	WeightSummary           []WeightSummary                   `json:"weightSummary"`
	DecisionMatrix          []MatrixRow                       `json:"decisionMatrix"`
	NormalizedMatrix        []MatrixRow                       `json:"normalizedMatrix"`
	WeightedMatrix          []MatrixRow                       `json:"weightedMatrix"`
	AggregatedScores        []AggregatedScore                 `json:"aggregatedScores"`
	Ranking                 []AggregatedScore                 `json:"ranking"`
	NormalizationReferences map[string]NormalizationReference `json:"normalizationReferences"`
}

// ReferenceOrder returns the normalization references in criterion order.
// A criterion ID that appears more than once is listed once.
func (r *Result) ReferenceOrder() []NormalizationReference {
	refs := make([]NormalizationReference, 0, len(r.NormalizationReferences))
	seen := make(map[string]bool, len(r.WeightSummary))
	for _, ws := range r.WeightSummary {
		if seen[ws.ID] {
			continue
		}
		seen[ws.ID] = true
		if ref, ok := r.NormalizationReferences[ws.ID]; ok {
			refs = append(refs, ref)
		}
	}
	return refs
}
