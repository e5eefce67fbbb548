package babele

import "strconv"

// RangeResult is one roll-table row keyed by its dice range.
type RangeResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RangeResults turns a roll table's results array into a mapping from
// "{start}-{end}" to the row's name and description. Rows without a
// two-element numeric range are skipped; absent name or description
// defaults to the empty string.
func RangeResults(results []any) *OrderedMap {
	out := NewOrderedMap()
	for _, raw := range results {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rng, ok := row["range"].([]any)
		if !ok || len(rng) != 2 {
			continue
		}
		start, okStart := rng[0].(float64)
		end, okEnd := rng[1].(float64)
		if !okStart || !okEnd {
			continue
		}
		key := formatNumber(start) + "-" + formatNumber(end)
		out.Set(key, RangeResult{
			Name:        stringOr(row["name"]),
			Description: stringOr(row["description"]),
		})
	}
	return out
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stringOr(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
