package narrative

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/saw"
)

// QueryParam is the query parameter that carries a shared ranking.
const QueryParam = "data"

// DefaultAlternativeName replaces an empty name in a shared ranking.
const DefaultAlternativeName = "Alternative"

// EncodeRanking serializes a ranking as the JSON array used in share links.
func EncodeRanking(ranking []saw.AggregatedScore) (string, error) {
	if ranking == nil {
		ranking = []saw.AggregatedScore{}
	}
	data, err := json.Marshal(ranking)
	if err != nil {
		return "", fmt.Errorf("encoding ranking: %w", err)
	}
	return string(data), nil
}

// ShareQuery builds the "data=<encoded ranking>" query string.
func ShareQuery(ranking []saw.AggregatedScore) (string, error) {
	encoded, err := EncodeRanking(ranking)
	if err != nil {
		return "", err
	}
	return url.Values{QueryParam: {encoded}}.Encode(), nil
}

// ShareURL appends the share query to base, keeping any query base already
// has.
func ShareURL(base string, ranking []saw.AggregatedScore) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	encoded, err := EncodeRanking(ranking)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(QueryParam, encoded)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseQuery reads a shared ranking from a raw query string. A leading "?"
// and full URLs are accepted.
func ParseQuery(rawQuery string) []saw.AggregatedScore {
	if i := strings.IndexByte(rawQuery, '?'); i >= 0 {
		rawQuery = rawQuery[i+1:]
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return []saw.AggregatedScore{}
	}
	return ParseRanking(values.Get(QueryParam))
}

// ParseRanking decodes a shared ranking. Malformed input yields an empty
// ranking. Entries without an id are dropped, an empty name becomes
// DefaultAlternativeName, and the older "crispScore" field is read when
// "score" is missing. Order is kept as given.
func ParseRanking(raw string) []saw.AggregatedScore {
	out := []saw.AggregatedScore{}
	if strings.TrimSpace(raw) == "" {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return out
	}

	for _, rawItem := range items {
		var item map[string]any
		if err := json.Unmarshal(rawItem, &item); err != nil || item == nil {
			continue
		}
		id := stringField(item["alternativeId"])
		if id == "" {
			continue
		}
		name := stringField(item["alternativeName"])
		if name == "" {
			name = DefaultAlternativeName
		}
		score, ok := item["score"]
		if !ok || score == nil {
			score = item["crispScore"]
		}
		out = append(out, saw.AggregatedScore{
			AlternativeID:   id,
			AlternativeName: name,
			Score:           numberField(score),
		})
	}
	return out
}

func stringField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// numberField accepts numbers and numeric strings; anything else is 0.
func numberField(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
