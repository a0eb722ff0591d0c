package surface_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/surface"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

func sampleReport() *surface.Report {
	wb := workbook.Default()
	return surface.NewReport(wb, wb.Compute())
}

func emptyReport() *surface.Report {
	wb := &workbook.Workbook{}
	return surface.NewReport(wb, wb.Compute())
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	r := &surface.TerminalRenderer{NoColor: true}
	var buf bytes.Buffer

	err := r.Render(&buf, sampleReport())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	// Check header
	if !strings.Contains(output, "Fuzzy SAW ranking: Alternative selection") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Analyzed: 4 criteria / 3 alternatives") {
		t.Error("expected input counts")
	}

	// Check tables
	for _, section := range []string{"Weights:", "Normalization references:", "Decision matrix:", "Normalized matrix:", "Weighted matrix:", "Ranking:"} {
		if !strings.Contains(output, section) {
			t.Errorf("expected %s section", section)
		}
	}
	if !strings.Contains(output, "Historical Data Quality") {
		t.Error("expected criterion name in weight table")
	}
	if !strings.Contains(output, "0.667") {
		t.Error("expected normalized value 0.667 for Alternative B")
	}

	// Check ranking order
	a := strings.Index(output, "1.  Alternative A")
	c := strings.Index(output, "2.  Alternative C")
	b := strings.Index(output, "3.  Alternative B")
	if a < 0 || c < 0 || b < 0 || !(a < c && c < b) {
		t.Errorf("expected ranking A, C, B in output:\n%s", output)
	}
	if !strings.Contains(output, "0.912") || !strings.Contains(output, "0.633") {
		t.Error("expected three-decimal scores")
	}

	// Check interpretation
	if !strings.Contains(output, "Interpretation:") {
		t.Error("expected Interpretation section")
	}
	if !strings.Contains(output, "primary signal") || !strings.Contains(output, "needs attention") {
		t.Error("expected per-rank remarks")
	}
	if strings.Contains(output, "\033[") {
		t.Error("expected no ANSI codes with NoColor")
	}
}

func TestTerminalRenderer_Empty(t *testing.T) {
	r := &surface.TerminalRenderer{NoColor: true}
	var buf bytes.Buffer

	err := r.Render(&buf, emptyReport())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "No alternatives to rank") {
		t.Error("expected 'No alternatives to rank' message")
	}
	if strings.Contains(output, "Interpretation:") {
		t.Error("expected no interpretation for an empty ranking")
	}
}

func TestTerminalRenderer_Issues(t *testing.T) {
	wb := workbook.Default()
	wb.Criteria[0].Weight = -1
	report := surface.NewReport(wb, wb.Compute())

	r := &surface.TerminalRenderer{NoColor: true}
	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(buf.String(), "negative weight") {
		t.Error("expected validation warning in output")
	}
}

func TestTerminalRenderer_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no ANSI codes when NO_COLOR is set")
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		defer os.Setenv("NO_COLOR", v)
	}

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	err := r.Render(&buf, sampleReport())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&surface.MarkdownRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"## Fuzzy SAW ranking: Alternative selection",
		"| c1 | Historical Data Quality | benefit | 0.350 | 0.350 |",
		"| Alternative | c1 | c2 | c3 | c4 |",
		"| 1 | **Alternative A** | 0.912 |",
		"| 3 | Alternative B | 0.633 |",
		"### Interpretation",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in markdown:\n%s", want, output)
		}
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	wb := &workbook.Workbook{
		Criteria:     []saw.Criterion{{ID: "c1", Name: "a|b", Weight: 1, Type: saw.Benefit}},
		Alternatives: []saw.Alternative{{ID: "x", Name: "x|y", Values: map[string]float64{"c1": 1}}},
	}
	output := surface.BuildMarkdown(surface.NewReport(wb, wb.Compute()))

	if !strings.Contains(output, `a\|b`) || !strings.Contains(output, `x\|y`) {
		t.Errorf("expected escaped pipes:\n%s", output)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&surface.JSONRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded struct {
		Result    saw.Result `json:"result"`
		Narrative struct {
			Leader saw.AggregatedScore `json:"leader"`
		} `json:"narrative"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Result.Ranking) != 3 {
		t.Fatalf("expected 3 ranked alternatives, got %d", len(decoded.Result.Ranking))
	}
	if decoded.Narrative.Leader.AlternativeID != "a1" {
		t.Errorf("expected leader a1, got %q", decoded.Narrative.Leader.AlternativeID)
	}
	if got := decoded.Result.DecisionMatrix[0].Values.Keys(); strings.Join(got, ",") != "c1,c2,c3,c4" {
		t.Errorf("expected criterion order c1..c4, got %v", got)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"text", false},
		{"JSON", false},
		{"md", false},
		{"markdown", false},
		{"html", true},
	}
	for _, tt := range tests {
		_, err := surface.New(tt.format, false)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}
