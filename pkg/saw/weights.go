package saw

// NormalizeWeights produces one WeightSummary per criterion, in input order.
//
// Each weight is divided by the total and rounded to Precision digits. When
// the total is zero every criterion gets an equal 1/N share instead. Negative
// weights are used as given.
func NormalizeWeights(criteria []Criterion) []WeightSummary {
	summaries := make([]WeightSummary, 0, len(criteria))
	if len(criteria) == 0 {
		return summaries
	}

	var total float64
	for _, c := range criteria {
		total += c.Weight
	}
	fallback := equalWeight(len(criteria))

	for _, c := range criteria {
		w := fallback
		if total != 0 {
			w = Round6(c.Weight / total)
		}
		summaries = append(summaries, WeightSummary{
			ID:               c.ID,
			Name:             c.Name,
			RawWeight:        c.Weight,
			NormalizedWeight: w,
			Type:             c.Type,
		})
	}
	return summaries
}

// equalWeight is the 1/N share used when weights cannot be normalized.
func equalWeight(n int) float64 {
	if n == 0 {
		return 0
	}
	return 1 / float64(n)
}

func weightMap(summaries []WeightSummary) map[string]float64 {
	m := make(map[string]float64, len(summaries))
	for _, ws := range summaries {
		m[ws.ID] = ws.NormalizedWeight
	}
	return m
}
