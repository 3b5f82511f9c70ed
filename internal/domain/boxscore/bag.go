package boxscore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Bag is a decoded upstream stat object. Values may be missing or carry any JSON type.
type Bag map[string]any

// Float returns the first key holding a finite number. Missing or non-numeric values fall
// through to the next alias; 0 when none qualifies.
func (b Bag) Float(keys ...string) float64 {
	for _, key := range keys {
		raw, ok := b[key]
		if !ok || raw == nil {
			continue
		}
		if v, ok := toFloat(raw); ok {
			return v
		}
	}
	return 0
}

// String returns the first non-empty string value among keys.
func (b Bag) String(keys ...string) string {
	for _, key := range keys {
		if s, ok := b[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// Sub returns a nested object, or an empty bag when absent or not an object.
func (b Bag) Sub(key string) Bag {
	switch v := b[key].(type) {
	case map[string]any:
		return Bag(v)
	case Bag:
		return v
	default:
		return Bag{}
	}
}

// Has reports whether key holds a non-nil value.
func (b Bag) Has(key string) bool {
	v, ok := b[key]
	return ok && v != nil
}

func toFloat(raw any) (float64, bool) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case int32:
		v = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
