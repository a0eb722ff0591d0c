// Package store is the in-memory editing state of one ranking session.
// It mirrors the operations of the interactive editor: add, update and remove
// criteria and alternatives, set raw values, and reset to the seed workbook.
//
// A Store is not safe for concurrent use.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

// ErrNotFound is returned when an id does not name a criterion or alternative.
var ErrNotFound = errors.New("not found")

const (
	// DefaultCriterionWeight is the weight given to a newly added criterion.
	DefaultCriterionWeight = 0.1
	idLength               = 7
)

// IDFunc returns a new id with the given prefix.
type IDFunc func(prefix string) string

// NewID builds "<prefix>-<7 hex chars>" from a random UUID.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + raw[:idLength]
}

// Store holds the working copy of a workbook.
type Store struct {
	wb    *workbook.Workbook
	newID IDFunc
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the id generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store editing a copy of wb.
func New(wb *workbook.Workbook, opts ...Option) *Store {
	s := &Store{wb: wb.Clone(), newID: NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault creates a store seeded with the default workbook.
func NewDefault(opts ...Option) *Store {
	return New(workbook.Default(), opts...)
}

// Snapshot returns a deep copy of the current state. This is what the engine
// is handed, so later edits never reach a computed result.
func (s *Store) Snapshot() *workbook.Workbook {
	return s.wb.Clone()
}

// Compute ranks a fresh snapshot.
func (s *Store) Compute() *saw.Result {
	return s.Snapshot().Compute()
}

// ResetDefaults discards every edit and restores the seed workbook.
func (s *Store) ResetDefaults() {
	s.wb = workbook.Default()
}

// AddCriterion appends a benefit criterion with the default weight and gives
// every alternative a 0 value for it.
func (s *Store) AddCriterion() saw.Criterion {
	c := saw.Criterion{
		ID:     s.newID("c"),
		Name:   fmt.Sprintf("Criterion %d", len(s.wb.Criteria)+1),
		Weight: DefaultCriterionWeight,
		Type:   saw.Benefit,
	}
	s.wb.Criteria = append(s.wb.Criteria, c)
	for i := range s.wb.Alternatives {
		setValue(&s.wb.Alternatives[i], c.ID, 0)
	}
	return c
}

// CriterionPatch holds the fields to change on a criterion. Nil fields are
// left alone.
type CriterionPatch struct {
	Name   *string
	Weight *float64
	Type   *saw.CriterionType
}

// UpdateCriterion applies a patch to the criterion with the given id.
func (s *Store) UpdateCriterion(id string, patch CriterionPatch) error {
	i := s.criterionIndex(id)
	if i < 0 {
		return fmt.Errorf("criterion %q: %w", id, ErrNotFound)
	}
	c := &s.wb.Criteria[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Weight != nil {
		c.Weight = *patch.Weight
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	return nil
}

// RemoveCriterion drops a criterion and its value from every alternative.
func (s *Store) RemoveCriterion(id string) error {
	i := s.criterionIndex(id)
	if i < 0 {
		return fmt.Errorf("criterion %q: %w", id, ErrNotFound)
	}
	s.wb.Criteria = append(s.wb.Criteria[:i:i], s.wb.Criteria[i+1:]...)
	for j := range s.wb.Alternatives {
		delete(s.wb.Alternatives[j].Values, id)
	}
	return nil
}

// AddAlternative appends an alternative named after the next letter, with a
// 0 value for every criterion.
func (s *Store) AddAlternative() saw.Alternative {
	alt := saw.Alternative{
		ID:     s.newID("a"),
		Name:   "Alternative " + columnLetters(len(s.wb.Alternatives)),
		Values: make(map[string]float64, len(s.wb.Criteria)),
	}
	for _, c := range s.wb.Criteria {
		alt.Values[c.ID] = 0
	}
	s.wb.Alternatives = append(s.wb.Alternatives, alt)
	return workbook.CloneAlternative(alt)
}

// UpdateAlternativeName renames an alternative.
func (s *Store) UpdateAlternativeName(id, name string) error {
	i := s.alternativeIndex(id)
	if i < 0 {
		return fmt.Errorf("alternative %q: %w", id, ErrNotFound)
	}
	s.wb.Alternatives[i].Name = name
	return nil
}

// RemoveAlternative drops an alternative.
func (s *Store) RemoveAlternative(id string) error {
	i := s.alternativeIndex(id)
	if i < 0 {
		return fmt.Errorf("alternative %q: %w", id, ErrNotFound)
	}
	s.wb.Alternatives = append(s.wb.Alternatives[:i:i], s.wb.Alternatives[i+1:]...)
	return nil
}

// UpdateAlternativeValue sets one raw value. Both ids must exist.
func (s *Store) UpdateAlternativeValue(alternativeID, criterionID string, value float64) error {
	i := s.alternativeIndex(alternativeID)
	if i < 0 {
		return fmt.Errorf("alternative %q: %w", alternativeID, ErrNotFound)
	}
	if s.criterionIndex(criterionID) < 0 {
		return fmt.Errorf("criterion %q: %w", criterionID, ErrNotFound)
	}
	setValue(&s.wb.Alternatives[i], criterionID, value)
	return nil
}

// Criterion returns the criterion with the given id.
func (s *Store) Criterion(id string) (saw.Criterion, bool) {
	i := s.criterionIndex(id)
	if i < 0 {
		return saw.Criterion{}, false
	}
	return s.wb.Criteria[i], true
}

func (s *Store) criterionIndex(id string) int {
	for i, c := range s.wb.Criteria {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) alternativeIndex(id string) int {
	for i, a := range s.wb.Alternatives {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func setValue(alt *saw.Alternative, criterionID string, v float64) {
	if alt.Values == nil {
		alt.Values = make(map[string]float64)
	}
	alt.Values[criterionID] = v
}

// columnLetters names the n-th alternative: A..Z, then AA, AB, ...
func columnLetters(n int) string {
	var b []byte
	for n >= 0 {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
	}
	return string(b)
}
