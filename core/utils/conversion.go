package utils

import "fmt"

// ToString converts various types to string.
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

// AsBool reports a value as a boolean only when it genuinely is one.
// Unlike loose coercion helpers, strings ("TRUE", "1") and numbers never
// count: a checkbox state exists only where the cell holds a real bool.
func AsBool(val any) (bool, bool) {
	b, ok := val.(bool)
	return b, ok
}
