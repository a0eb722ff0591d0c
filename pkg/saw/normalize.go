package saw

// BuildReferences computes the max and min of every criterion's column over
// the given alternatives. Missing values count as 0. With no alternatives
// both extremes are 0.
func BuildReferences(criteria []Criterion, alternatives []Alternative) map[string]NormalizationReference {
	refs := make(map[string]NormalizationReference, len(criteria))
	for _, c := range criteria {
		ref := NormalizationReference{
			CriterionID:   c.ID,
			CriterionName: c.Name,
			Type:          c.Type,
		}
		for i, alt := range alternatives {
			v := alt.Values[c.ID]
			if i == 0 || v > ref.Max {
				ref.Max = v
			}
			if i == 0 || v < ref.Min {
				ref.Min = v
			}
		}
		refs[c.ID] = ref
	}
	return refs
}

// DecisionMatrix lays the raw values out as one row per alternative with a
// cell for every criterion, in criteria order. A repeated criterion ID keeps
// its first position.
func DecisionMatrix(criteria []Criterion, alternatives []Alternative) []MatrixRow {
	rows := make([]MatrixRow, 0, len(alternatives))
	for _, alt := range alternatives {
		cells := make(Cells, 0, len(criteria))
		seen := make(map[string]bool, len(criteria))
		for _, c := range criteria {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			cells = append(cells, Cell{CriterionID: c.ID, Value: alt.Values[c.ID]})
		}
		rows = append(rows, MatrixRow{
			AlternativeID:   alt.ID,
			AlternativeName: alt.Name,
			Values:          cells,
		})
	}
	return rows
}

// NormalizeValue applies the SAW rule for one cell.
//
//	benefit: value / max, or 0 when max is 0
//	cost:    min / value, or 0 when value is 0
//
// A zero cost value normalizes to 0 rather than to the best score. Existing
// rankings depend on that, so it must not be "fixed". Any type other than
// Benefit is normalized as a cost.
func NormalizeValue(value float64, ref NormalizationReference) float64 {
	if ref.Type == Benefit {
		if ref.Max == 0 {
			return 0
		}
		return Round6(value / ref.Max)
	}
	if value == 0 {
		return 0
	}
	return Round6(ref.Min / value)
}

// NormalizeMatrix maps every cell of the decision matrix through
// NormalizeValue. Row and cell order are preserved.
func NormalizeMatrix(decision []MatrixRow, refs map[string]NormalizationReference) []MatrixRow {
	return mapRows(decision, func(criterionID string, v float64) float64 {
		return NormalizeValue(v, refs[criterionID])
	})
}

func mapRows(rows []MatrixRow, fn func(criterionID string, v float64) float64) []MatrixRow {
	out := make([]MatrixRow, 0, len(rows))
	for _, row := range rows {
		cells := make(Cells, len(row.Values))
		for i, cell := range row.Values {
			cells[i] = Cell{CriterionID: cell.CriterionID, Value: fn(cell.CriterionID, cell.Value)}
		}
		out = append(out, MatrixRow{
			AlternativeID:   row.AlternativeID,
			AlternativeName: row.AlternativeName,
			Values:          cells,
		})
	}
	return out
}
