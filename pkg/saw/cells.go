package saw

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Cell is a single criterion value inside a matrix row.
type Cell struct {
	CriterionID string
	Value       float64
}

// Cells is an ordered criterion ID -> value mapping. Order follows the
// criteria list the row was built from. It encodes as a JSON object whose
// keys keep that order.
type Cells []Cell

// Get returns the value for a criterion and whether it is present.
func (c Cells) Get(criterionID string) (float64, bool) {
	for _, cell := range c {
		if cell.CriterionID == criterionID {
			return cell.Value, true
		}
	}
	return 0, false
}

// Value returns the value for a criterion, or 0 if absent.
func (c Cells) Value(criterionID string) float64 {
	v, _ := c.Get(criterionID)
	return v
}

// Keys returns the criterion IDs in order.
func (c Cells) Keys() []string {
	keys := make([]string, len(c))
	for i, cell := range c {
		keys[i] = cell.CriterionID
	}
	return keys
}

// Sum adds the values left to right.
func (c Cells) Sum() float64 {
	var total float64
	for _, cell := range c {
		total += cell.Value
	}
	return total
}

func (c Cells) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cell := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cell.CriterionID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(cell.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", cell.CriterionID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Cells) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("cells: expected object, got %v", tok)
	}

	cells := Cells{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("cells: expected string key, got %v", keyTok)
		}
		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("cells: value for %s: %w", key, err)
		}
		cells = append(cells, Cell{CriterionID: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = cells
	return nil
}
