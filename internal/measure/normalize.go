// Package measure normalizes raw measurement payloads into their stored form.
//
// Customer forms submit measurements as loosely typed JSON: numbers arrive as
// strings or numbers, untouched inputs as empty strings or nulls. Normalize
// coerces every schema field to its declared kind and drops anything empty or
// unparseable, so a stored numeric field is always a finite float64 and a
// stored text field is always a non-empty string.
package measure

import (
	"math"
	"strconv"
	"strings"
)

// Normalize returns a fresh map holding only the fields that survive the
// schema rules. The input map is never mutated.
//
// Number fields: empty strings and nils are dropped; strings are parsed as
// floats and dropped when parsing fails; non-finite values are dropped. A
// value of 0 (or "0") is meaningful and kept. Text fields: dropped when empty,
// kept verbatim otherwise. Fields absent from the schema pass through
// unchanged. Normalize is idempotent: running it over its own output yields
// the same map.
func Normalize(raw map[string]interface{}, schema Schema) map[string]interface{} {
	if raw == nil {
		return nil
	}
	clean := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		kind, known := schema[key]
		if !known {
			clean[key] = value
			continue
		}
		switch kind {
		case Number:
			if n, ok := toNumber(value); ok {
				clean[key] = n
			}
		case Text:
			if s, ok := toText(value); ok {
				clean[key] = s
			}
		}
	}
	return clean
}

// toNumber coerces a raw value to a finite float64. The bool result is false
// when the value must be dropped.
func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, isFinite(n)
	default:
		return 0, false
	}
}

func toText(value interface{}) (string, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
