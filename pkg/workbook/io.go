package workbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// Format is a workbook file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown workbook format %q (want yaml or json)", s)
	}
}

// FormatFromPath picks the format from a file extension. Anything that is
// not .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a workbook. Criterion types may be written as "benefit" /
// "cost" or as "max" / "min".
func Decode(data []byte, format Format) (*Workbook, error) {
	var wb Workbook
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &wb); err != nil {
			return nil, fmt.Errorf("parsing workbook json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &wb); err != nil {
			return nil, fmt.Errorf("parsing workbook yaml: %w", err)
		}
	}

	for i := range wb.Criteria {
		wb.Criteria[i].Type = canonicalType(wb.Criteria[i].Type)
	}
	for i := range wb.Alternatives {
		if wb.Alternatives[i].Values == nil {
			wb.Alternatives[i].Values = map[string]float64{}
		}
	}
	return &wb, nil
}

// Encode serializes a workbook. JSON output is indented.
func Encode(wb *Workbook, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(wb, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling workbook: %w", err)
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(wb); err != nil {
			return nil, fmt.Errorf("marshaling workbook: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling workbook: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// Load reads a workbook from disk.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	wb, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return wb, nil
}

// Save writes a workbook to disk in the format matching its extension.
func Save(path string, wb *Workbook) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for workbook: %w", err)
	}

	data, err := Encode(wb, FormatFromPath(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// canonicalType maps the max/min spelling onto benefit/cost. Unknown
// spellings are kept so Validate can report them.
func canonicalType(t saw.CriterionType) saw.CriterionType {
	switch strings.ToLower(strings.TrimSpace(string(t))) {
	case "benefit", "max":
		return saw.Benefit
	case "cost", "min":
		return saw.Cost
	default:
		return t
	}
}

// ParseType parses a criterion type as typed by a user.
func ParseType(s string) (saw.CriterionType, error) {
	t := canonicalType(saw.CriterionType(s))
	if t != saw.Benefit && t != saw.Cost {
		return "", fmt.Errorf("unknown criterion type %q (want benefit or cost)", s)
	}
	return t, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
