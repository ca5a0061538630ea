package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string. API payloads are decoded into
// map[string]any, so missing fields arrive as nil and become "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToInt converts various types to int using explicit type switching.
// JSON numbers decode as float64, which is the common case here.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToStringSlice converts a decoded JSON array into a slice of strings,
// skipping entries that are not strings. A nil or non-array value yields
// an empty slice, never nil.
func ToStringSlice(val any) []string {
	out := []string{}
	arr, ok := val.([]any)
	if !ok {
		return out
	}
	for _, entry := range arr {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
