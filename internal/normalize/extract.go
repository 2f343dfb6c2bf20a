package normalize

import "strconv"

// extractValue normalizes a stat value from the upstream's mixed formats:
// flat numbers, numeric strings, and nested objects keyed by an aggregate
// field. Returns ok=false when no numeric value is extractable.
func extractValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		// Nested stat objects: try the aggregate keys in order.
		for _, key := range []string{"value", "total", "all", "count", "average"} {
			if inner, exists := v[key]; exists && inner != nil {
				return extractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// parseScore resolves a competitor score string. Absent or unparseable
// scores default to 0, so a missing score on a Final game is
// indistinguishable from a real 0.
func parseScore(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
