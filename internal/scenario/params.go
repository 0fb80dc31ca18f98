package scenario

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

func stringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false
	}
	return text(v), true
}

func requireString(params map[string]any, key string) (string, error) {
	s, ok := stringParam(params, key)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	return s, nil
}

func boolParam(params map[string]any, key string, def bool) bool {
	b, ok := params[key].(bool)
	if !ok {
		return def
	}
	return b
}

// text renders a YAML scalar the way form values are displayed.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func stringList(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = text(item)
		}
		return out
	default:
		return []string{text(v)}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func compare(key string, expected, actual any) *ExpectResult {
	er := &ExpectResult{Key: key, Expected: expected, Actual: actual}
	if reflect.DeepEqual(expected, actual) {
		er.Passed = true
		er.Message = fmt.Sprintf("got %v", actual)
	} else {
		er.Message = fmt.Sprintf("expected %v, got %v", expected, actual)
	}
	return er
}
