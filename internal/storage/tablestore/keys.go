package tablestore

import "strings"

// The hosted store names columns in snake_case while the application
// uses camelCase. The conversion lives here, at the gateway boundary,
// and nowhere else.

// ToSnakeCase inserts an underscore before every upper-case letter and
// lowers it: "maxPeople" -> "max_people". Applied to map keys only.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamelCase folds "_x" pairs back: "max_people" -> "maxPeople".
// Only underscore + lower-case letter pairs are folded, which makes the
// pair of functions a round trip even for keys like "zh-HK".
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ConvertKeys rewrites every map key in v, recursively through nested
// maps and slices. Values are untouched.
func ConvertKeys(v any, conv func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[conv(k)] = ConvertKeys(val, conv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = ConvertKeys(val, conv)
		}
		return out
	default:
		return v
	}
}
