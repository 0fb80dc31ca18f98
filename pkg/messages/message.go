package messages

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Descriptor identifies a message and carries its default text.
type Descriptor struct {
	ID      string
	Default string
}

// String returns the default text with placeholders left in place.
func (d Descriptor) String() string {
	return d.Default
}

// Format returns the default text of d with {name} placeholders replaced by
// the matching entries of values. Placeholders without a value are kept.
func Format(d Descriptor, values map[string]any) string {
	text := d.Default
	if len(values) == 0 || !strings.Contains(text, "{") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			break
		}
		end += open

		name := text[open+1 : end]
		value, ok := values[name]
		b.WriteString(text[:open])
		if ok {
			b.WriteString(formatValue(value))
		} else {
			b.WriteString(text[open : end+1])
		}
		text = text[end+1:]
	}
	b.WriteString(text)
	return b.String()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case Descriptor:
		return v.Default
	default:
		return fmt.Sprint(v)
	}
}

var catalog = index(all)

func index(descriptors []Descriptor) map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.ID] = d
	}
	return m
}

// Lookup returns the descriptor with the given ID.
func Lookup(id string) (Descriptor, bool) {
	d, ok := catalog[id]
	return d, ok
}

// All returns every descriptor sorted by ID.
func All() []Descriptor {
	result := make([]Descriptor, 0, len(catalog))
	for _, d := range catalog {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
