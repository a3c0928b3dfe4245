package homework

import (
	"encoding/json"
	"math"
)

// Record is a single homework entry as returned by the API. Only
// homework_name and status are read; everything else is ignored.
type Record map[string]any

// Response is the validated view of one API answer.
type Response struct {
	Homeworks []Record
	// CurrentDate is the server's cursor for the next request; nil when the
	// response did not carry a numeric current_date.
	CurrentDate *int64
}

// CheckResponse verifies that body is a mapping with a list under
// "homeworks". An empty list is valid. Entries that are not mappings are kept
// as nil records so the formatter reports them.
func CheckResponse(body any) (Response, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return Response{}, Errorf(KindSchema, "Входящие данные переданы не в виде словаря.")
	}
	raw, ok := m["homeworks"].([]any)
	if !ok {
		return Response{}, Errorf(KindSchema, "Входящие данные переданы не в виде списка.")
	}

	resp := Response{Homeworks: make([]Record, 0, len(raw))}
	for _, item := range raw {
		rec, _ := item.(map[string]any)
		resp.Homeworks = append(resp.Homeworks, Record(rec))
	}
	if ts, ok := asInt64(m["current_date"]); ok {
		resp.CurrentDate = &ts
	}
	return resp, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
