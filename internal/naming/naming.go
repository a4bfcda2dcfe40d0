// Package naming provides identifier tokenizing, case conversion and name
// likeness used by conventions and relation pairing.
package naming

import (
	"strings"
	"unicode"
)

// Tokenize splits a CamelCase, camelCase or separated identifier into tokens.
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "order_item-id" -> ["order", "item", "id"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if isSeparator(prev) {
		return false
	}

	upper, prevUpper := unicode.IsUpper(r), unicode.IsUpper(prev)

	// "orderID" splits before 'I'
	if upper && !prevUpper {
		return true
	}

	// "XMLParser" splits before 'P'
	return upper && prevUpper && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Normalize lowercases an identifier and drops separators, so "OrderID",
// "order_id" and "orderId" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// SnakeCase converts an identifier to lower snake case ("OrderID" -> "order_id").
func SnakeCase(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// Singular strips a simple English plural suffix from a normalized name.
func Singular(s string) string {
	switch {
	case strings.HasSuffix(s, "ies") && len(s) > 3:
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "ses") && len(s) > 3:
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") && len(s) > 1:
		return s[:len(s)-1]
	default:
		return s
	}
}

// Distance computes the Levenshtein edit distance between two strings.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// keep a as the shorter string so the rows stay small
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Likeness scores how alike two identifiers are after normalization and
// singularization, from 0 (nothing in common) to 1 (same name).
func Likeness(a, b string) float64 {
	na, nb := Singular(Normalize(a)), Singular(Normalize(b))
	if na == "" && nb == "" {
		return 1.0
	}

	return 1.0 - float64(Distance(na, nb))/float64(max(len(na), len(nb)))
}
