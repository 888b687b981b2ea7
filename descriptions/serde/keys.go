package serde

import "strings"

// k returns the canonical snake_case key name plus its camelCase spelling,
// since real-world documents mix both conventions ("readWrite",
// "entityName", "httpMethod" alongside snake_case fields). Accepting either
// avoids tying the format to one casing convention; additional true legacy
// aliases (nullable/optional, etc.) are listed explicitly by callers rather
// than derived here.
func k(snake string) []string {
	camel := snakeToCamel(snake)
	if camel == snake {
		return []string{snake}
	}

	return []string{snake, camel}
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 1 {
		return s
	}

	var sb strings.Builder

	sb.WriteString(parts[0])

	for _, p := range parts[1:] {
		if p == "" {
			continue
		}

		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}

	return sb.String()
}

// ks joins k(snake) with additional legacy alias keys, primary-then-legacy.
func ks(snake string, legacy ...string) []string {
	out := k(snake)
	out = append(out, legacy...)

	return out
}
