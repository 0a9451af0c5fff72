package llm

import "strings"

// Tolerant JSON extraction from free-form LLM text. Providers are asked
// for JSON-only output but are not contractually bound to it: responses
// arrive wrapped in markdown fences, prefixed with prose, or suffixed
// with explanations. These helpers locate the first well-formed
// bracketed block so callers can attempt a normal unmarshal.

// ExtractJSONObject returns the first balanced { ... } block in the
// text, after stripping markdown code fences. ok=false if none exists.
func ExtractJSONObject(raw string) (string, bool) {
	s := extractBalanced(StripCodeFences(raw), '{', '}')
	return s, s != ""
}

// ExtractJSONArray returns the first balanced [ ... ] block in the
// text, after stripping markdown code fences. ok=false if none exists.
func ExtractJSONArray(raw string) (string, bool) {
	s := extractBalanced(StripCodeFences(raw), '[', ']')
	return s, s != ""
}

// StripCodeFences removes markdown code fences (```json ... ``` or
// ``` ... ```), keeping the fenced content.
func StripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractBalanced finds the first balanced open...close block, tracking
// string literals and escapes so braces inside values don't miscount.
func extractBalanced(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
