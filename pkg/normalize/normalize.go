// pkg/normalize/normalize.go

// Package normalize provides the per-value coercion primitives used by the
// record builder. Every function is pure and total: values that cannot be
// coerced come back as absent, never as an error.
package normalize

import (
	"strconv"
	"strings"
)

var punctuationReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// Text converts unicode smart punctuation to its ASCII equivalent.
func Text(s string) string {
	return punctuationReplacer.Replace(s)
}

// Bool parses an operator-entered boolean. The second return value is false
// when the input is not a recognized boolean; callers must treat that as
// "field not set", never as false.
func Bool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true, true
	case "false", "f", "0", "no", "n":
		return false, true
	default:
		return false, false
	}
}

// Float parses a decimal value, stripping currency symbols and thousands
// separators. Blank or unparsable input yields absence.
func Float(s string) (float64, bool) {
	cleaned := stripNumericNoise(s)
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses an integer value with the same noise stripping as Float.
// Fractional input truncates toward zero through float semantics, so
// "17.9" yields 17.
func Int(s string) (int64, bool) {
	f, ok := Float(s)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func stripNumericNoise(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

// Multi canonicalizes a comma-delimited multi-select value: tokens are
// trimmed, empty tokens discarded, and duplicates removed while preserving
// first-seen order. The result is rejoined with ", ".
func Multi(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	items := make([]string, 0)
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		token := strings.TrimSpace(part)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		items = append(items, token)
	}

	return strings.Join(items, ", ")
}

// SplitMulti splits a canonical multi-select value into its tokens.
// Blank input yields an empty, non-nil slice so array columns store '{}'.
func SplitMulti(s string) []string {
	tokens := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
