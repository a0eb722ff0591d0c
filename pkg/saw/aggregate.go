package saw

import "sort"

// WeightMatrix multiplies each normalized cell by its criterion's normalized
// weight, rounded to Precision digits. A criterion missing from weights falls
// back to the equal 1/N share, where N is the number of criteria.
func WeightMatrix(normalized []MatrixRow, weights []WeightSummary) []MatrixRow {
	byID := weightMap(weights)
	fallback := equalWeight(len(weights))
	return mapRows(normalized, func(criterionID string, v float64) float64 {
		w, ok := byID[criterionID]
		if !ok {
			w = fallback
		}
		return Round6(v * w)
	})
}

// Aggregate sums each weighted row into a crisp score, rounded to Precision
// digits. Output order follows the rows.
func Aggregate(weighted []MatrixRow) []AggregatedScore {
	scores := make([]AggregatedScore, 0, len(weighted))
	for _, row := range weighted {
		scores = append(scores, AggregatedScore{
			AlternativeID:   row.AlternativeID,
			AlternativeName: row.AlternativeName,
			Score:           Round6(row.Values.Sum()),
		})
	}
	return scores
}

// Rank returns a copy of scores ordered by score, highest first. Equal scores
// keep their input order.
func Rank(scores []AggregatedScore) []AggregatedScore {
	ranking := make([]AggregatedScore, len(scores))
	copy(ranking, scores)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}
