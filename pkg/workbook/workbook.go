// Package workbook holds the editable input of a ranking session: the
// criteria, the alternatives and their raw values. Workbooks are stored as
// YAML or JSON files.
package workbook

import (
	"fmt"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// Workbook is one decision problem ready to hand to the engine.
type Workbook struct {
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	Criteria     []saw.Criterion   `json:"criteria" yaml:"criteria"`
	Alternatives []saw.Alternative `json:"alternatives" yaml:"alternatives"`
}

// Compute ranks the workbook's current contents.
func (wb *Workbook) Compute() *saw.Result {
	return saw.Compute(wb.Criteria, wb.Alternatives)
}

// Clone returns a deep copy. Value maps are copied, never shared.
func (wb *Workbook) Clone() *Workbook {
	out := &Workbook{
		Title:        wb.Title,
		Criteria:     make([]saw.Criterion, len(wb.Criteria)),
		Alternatives: make([]saw.Alternative, len(wb.Alternatives)),
	}
	copy(out.Criteria, wb.Criteria)
	for i, alt := range wb.Alternatives {
		out.Alternatives[i] = CloneAlternative(alt)
	}
	return out
}

// CloneAlternative copies an alternative including its value map.
func CloneAlternative(alt saw.Alternative) saw.Alternative {
	values := make(map[string]float64, len(alt.Values))
	for k, v := range alt.Values {
		values[k] = v
	}
	alt.Values = values
	return alt
}

// Default returns the seed workbook: four criteria and three alternatives.
// Each call returns a fresh copy.
func Default() *Workbook {
	return &Workbook{
		Title: "Alternative selection",
		Criteria: []saw.Criterion{
			{ID: "c1", Name: "Historical Data Quality", Weight: 0.35, Type: saw.Benefit},
			{ID: "c2", Name: "Actual Performance", Weight: 0.25, Type: saw.Benefit},
			{ID: "c3", Name: "Implementation Cost", Weight: 0.2, Type: saw.Cost},
			{ID: "c4", Name: "Potential Impact", Weight: 0.2, Type: saw.Benefit},
		},
		Alternatives: []saw.Alternative{
			{ID: "a1", Name: "Alternative A", Values: map[string]float64{"c1": 0.75, "c2": 0.5, "c3": 0.25, "c4": 0.75}},
			{ID: "a2", Name: "Alternative B", Values: map[string]float64{"c1": 0.5, "c2": 0.25, "c3": 0.25, "c4": 0.5}},
			{ID: "a3", Name: "Alternative C", Values: map[string]float64{"c1": 1, "c2": 0.5, "c3": 0.5, "c4": 0.75}},
		},
	}
}

// Severity grades a validation issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one advisory finding from Validate. The engine accepts any input,
// so issues describe surprising results rather than failures.
type Issue struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Validate reports duplicate ids, negative or all-zero weights, unknown
// criterion types and values keyed by criteria that do not exist.
func (wb *Workbook) Validate() []Issue {
	var issues []Issue
	add := func(sev Severity, path, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	known := make(map[string]bool, len(wb.Criteria))
	var total float64
	for i, c := range wb.Criteria {
		path := fmt.Sprintf("criteria[%d]", i)
		switch {
		case c.ID == "":
			add(SeverityError, path, "empty id")
		case known[c.ID]:
			add(SeverityError, path, "duplicate id %q; the last definition sets the reference", c.ID)
		}
		known[c.ID] = true
		if c.Weight < 0 {
			add(SeverityWarning, path, "negative weight %v", c.Weight)
		}
		if c.Type != saw.Benefit && c.Type != saw.Cost {
			add(SeverityWarning, path, "unknown type %q is treated as cost", c.Type)
		}
		total += c.Weight
	}
	if len(wb.Criteria) > 0 && total == 0 {
		add(SeverityWarning, "criteria", "weights sum to zero; every criterion gets an equal share")
	}

	seen := make(map[string]bool, len(wb.Alternatives))
	for i, alt := range wb.Alternatives {
		path := fmt.Sprintf("alternatives[%d]", i)
		switch {
		case alt.ID == "":
			add(SeverityError, path, "empty id")
		case seen[alt.ID]:
			add(SeverityError, path, "duplicate id %q", alt.ID)
		}
		seen[alt.ID] = true
		for _, key := range sortedKeys(alt.Values) {
			if !known[key] {
				add(SeverityWarning, path, "value for unknown criterion %q is ignored", key)
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
