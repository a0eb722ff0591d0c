// Package narrative turns a ranking into plain-language guidance: who leads,
// by how much, who trails, and a remark for every rank.
package narrative

import (
	"fmt"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// ScoreDigits is the number of decimals scores are quoted with.
const ScoreDigits = 3

// DefaultLeadCriterion is used in the laggard advice when no criterion name
// is available.
const DefaultLeadCriterion = "the primary criterion"

// Remark classifies an alternative by its position in the ranking.
type Remark string

const (
	RemarkPrimary   Remark = "primary signal"
	RemarkBackup    Remark = "backup option"
	RemarkAttention Remark = "needs attention"
)

// Entry is one ranked alternative with its commentary.
type Entry struct {
	Rank   int                 `json:"rank"`
	Score  saw.AggregatedScore `json:"score"`
	Remark Remark              `json:"remark"`
	Text   string              `json:"text"`
}

// Report is the interpretation of one ranking.
type Report struct {
	Leader   *saw.AggregatedScore `json:"leader,omitempty"`
	RunnerUp *saw.AggregatedScore `json:"runnerUp,omitempty"`
	// Laggard is the last entry when there are several and it is not the
	// leader.
	Laggard *saw.AggregatedScore `json:"laggard,omitempty"`
	// Margin is leader minus runner-up, set only when it is not negative.
	Margin        *float64 `json:"margin,omitempty"`
	LeadCriterion string   `json:"leadCriterion,omitempty"`
	Entries       []Entry  `json:"entries"`
}

// Empty reports whether there was nothing to interpret.
func (r *Report) Empty() bool {
	return r.Leader == nil
}

// Interpret builds a report. leadCriterion names the criterion the laggard
// is advised to improve on; it is usually the first criterion of the
// workbook.
func Interpret(ranking []saw.AggregatedScore, leadCriterion string) *Report {
	if leadCriterion == "" {
		leadCriterion = DefaultLeadCriterion
	}
	r := &Report{LeadCriterion: leadCriterion, Entries: make([]Entry, 0, len(ranking))}
	if len(ranking) == 0 {
		return r
	}

	leader := ranking[0]
	r.Leader = &leader
	if len(ranking) > 1 {
		runnerUp := ranking[1]
		r.RunnerUp = &runnerUp
		if delta := leader.Score - runnerUp.Score; delta >= 0 {
			r.Margin = &delta
		}

		last := ranking[len(ranking)-1]
		if last.AlternativeID != leader.AlternativeID {
			r.Laggard = &last
		}
	}

	for i, s := range ranking {
		remark := remarkFor(i, len(ranking))
		r.Entries = append(r.Entries, Entry{
			Rank:   i + 1,
			Score:  s,
			Remark: remark,
			Text:   remarkText[remark],
		})
	}
	return r
}

func remarkFor(i, n int) Remark {
	switch {
	case i == 0:
		return RemarkPrimary
	case i == n-1:
		return RemarkAttention
	default:
		return RemarkBackup
	}
}

var remarkText = map[Remark]string{
	RemarkPrimary:   "Main signal for action: its scores hold up best against the priority weights.",
	RemarkBackup:    "Worth considering as a fallback, but less consistent than the options above it.",
	RemarkAttention: "Needs extra attention: several criteria still sit far from the leading candidate.",
}

// Headline is the opening sentence of the report.
func (r *Report) Headline() string {
	if r.Empty() {
		return "No ranking data available. Run a calculation first."
	}
	return fmt.Sprintf("%s currently leads with a score of %s. Its value mix is the most robust under the active weights.",
		r.Leader.AlternativeName, FormatScore(r.Leader.Score))
}

// MarginLine describes the gap to the runner-up, or "" when there is no
// non-negative margin.
func (r *Report) MarginLine() string {
	if r.Margin == nil || r.RunnerUp == nil {
		return ""
	}
	return fmt.Sprintf("The gap to second place (%s) is %s points. A wider gap after edits strengthens the recommendation; a narrower one means the two candidates are close.",
		r.RunnerUp.AlternativeName, FormatScore(*r.Margin))
}

// LaggardLine gives advice for the lowest-ranked alternative, or "".
func (r *Report) LaggardLine() string {
	if r.Laggard == nil {
		return ""
	}
	return fmt.Sprintf("The lowest candidate, %s, can still catch up by improving on heavily weighted criteria such as %s.",
		r.Laggard.AlternativeName, r.LeadCriterion)
}

// Verdict is the closing recommendation, or "".
func (r *Report) Verdict() string {
	if r.Empty() {
		return ""
	}
	return fmt.Sprintf("Focus on %s. A score of %s marks it as the most ready to implement; use it as the baseline before exploring other options.",
		r.Leader.AlternativeName, FormatScore(r.Leader.Score))
}

// Lines returns the non-empty summary sentences in reading order.
func (r *Report) Lines() []string {
	var lines []string
	for _, l := range []string{r.Headline(), r.MarginLine(), r.LaggardLine(), r.Verdict()} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// FormatScore quotes a score with ScoreDigits decimals.
func FormatScore(v float64) string {
	return saw.FormatFixed(v, ScoreDigits)
}

// Choose picks the ranking to interpret: the computed one when it has
// entries, otherwise the shared one.
func Choose(computed, shared []saw.AggregatedScore) []saw.AggregatedScore {
	if len(computed) > 0 {
		return computed
	}
	return shared
}
