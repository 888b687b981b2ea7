package stringconfig

import (
	"strings"
	"unicode"
)

// words splits an identifier into its constituent words, recognizing
// snake_case, kebab-case, camelCase, and PascalCase boundaries.
func words(s string) []string {
	var (
		out     []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()

			current.WriteRune(r)
		case unicode.IsUpper(r) && i > 0 && unicode.IsUpper(runes[i-1]) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// Boundary inside an acronym run followed by a new word, e.g.
			// "HTTPServer" -> "HTTP", "Server".
			flush()

			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	flush()

	return out
}

// wordCase renders a single word for use in camel/Pascal case, preferring
// the lexicon's canonical spelling (e.g. "URL", "ID") when the word is a
// whole lexicon entry, lower-casing it entirely otherwise.
func wordCase(cfg Config, word string, titleFirst bool) string {
	if canonical, ok := cfg.hasLexiconWord(word); ok {
		return canonical
	}

	lower := strings.ToLower(word)
	if !titleFirst || lower == "" {
		return lower
	}

	r := []rune(lower)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

// CamelCase converts s to camelCase, consulting cfg's lexicon to preserve
// the canonical spelling of recognized vocabulary terms (e.g. "userURL"
// rather than "userUrl" when "URL" is in the lexicon).
func CamelCase(cfg Config, s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, w := range ws {
		sb.WriteString(wordCase(cfg, w, i > 0))
	}

	return sb.String()
}

// PascalCase converts s to PascalCase using cfg's lexicon the same way
// [CamelCase] does.
func PascalCase(cfg Config, s string) string {
	ws := words(s)

	var sb strings.Builder

	for _, w := range ws {
		sb.WriteString(wordCase(cfg, w, true))
	}

	return sb.String()
}

// SnakeCase converts s to snake_case. Lexicon entries are lower-cased like
// any other word, since snake_case has no notion of preserved acronym
// casing.
func SnakeCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}

	return strings.Join(ws, "_")
}

// EntityTypeName returns the generated type name for an entity: its
// PascalCase name with cfg.EntitySuffix appended, unless the name already
// ends with that suffix.
func EntityTypeName(cfg Config, entityName string) string {
	pascal := PascalCase(cfg, entityName)
	if cfg.EntitySuffix == "" || strings.HasSuffix(pascal, cfg.EntitySuffix) {
		return pascal
	}

	return pascal + cfg.EntitySuffix
}

// PluralName applies the English plural-suffix rule used for generated
// collection-accessor names: words ending in s, x, z, ch, or sh take "es";
// words ending in a consonant + y replace the y with "ies"; everything
// else takes a plain "s".
func PluralName(s string) string {
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)

	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"), strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return s + "es"
	case strings.HasSuffix(lower, "y") && len(s) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// reservedIdentifiers are keywords that would be invalid or confusing as a
// generated local variable name in the target languages this core feeds
// (Go and Swift keywords that overlap with common property names).
var reservedIdentifiers = map[string]bool{
	"type": true, "func": true, "class": true, "struct": true,
	"interface": true, "var": true, "let": true, "default": true,
	"self": true, "nil": true, "true": true, "false": true,
	"import": true, "package": true, "return": true, "case": true,
}

// SafeVariableName returns name converted with [CamelCase]; when that
// result collides with a reserved identifier it appends "Value" to
// disambiguate (e.g. "type" -> "typeValue").
func SafeVariableName(cfg Config, name string) string {
	camel := CamelCase(cfg, name)
	if reservedIdentifiers[camel] {
		return camel + "Value"
	}

	return camel
}
