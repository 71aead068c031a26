package interpret

// #region imports
import "regexp"

// #endregion

// #region prefix-patterns

// Ordered pattern tables: the first match wins. Quoted canonical phrasings
// come first, loose "are ..." captures last so they cannot shadow a tighter
// match.
var prefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)starts?\s+with\s+['"]([a-zA-Z]+)['"]`),
	regexp.MustCompile(`(?i)begins?\s+with\s+['"]([a-zA-Z]+)['"]`),
	regexp.MustCompile(`(?i)starts?\s+with\s+([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)begins?\s+with\s+([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)first\s+(?:\d+|[a-z]+)\s+letters?\s+(?:of\s+the\s+password\s+)?are\s+(.+)`),
	regexp.MustCompile(`(?i)first\s+letters?\s+(?:of\s+the\s+password\s+)?are\s+(.+)`),
	regexp.MustCompile(`^\s*["']([a-zA-Z]+)["']`),
}

// #endregion

// #region suffix-patterns

var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ends?\s+with\s+['"]([a-zA-Z]+)['"]`),
	regexp.MustCompile(`(?i)finishes?\s+with\s+['"]([a-zA-Z]+)['"]`),
	regexp.MustCompile(`(?i)(?:password\s+)?ends?\s+with\s+["']?([a-zA-Z]+)["']?`),
	regexp.MustCompile(`(?i)finishes?\s+with\s+([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)last\s+letter\s+(?:of\s+the\s+password\s+)?is\s+['"]?([a-zA-Z])['"]?(?:[^a-zA-Z]|$)`),
	regexp.MustCompile(`(?i)last\s+(?:\d+|[a-z]+)\s+letters?\s+(?:of\s+the\s+password\s+)?are\s+(.+)`),
	regexp.MustCompile(`(?i)last\s+letters?\s+(?:of\s+the\s+password\s+)?are\s+(.+)`),
}

// #endregion

// #region extract

func extractPrefix(answer string, expected int) (string, bool) {
	if letters, ok := matchLetterPatterns(prefixPatterns, answer); ok {
		return letters, true
	}
	return bareLetters(answer, expected)
}

func extractSuffix(answer string, expected int) (string, bool) {
	if letters, ok := matchLetterPatterns(suffixPatterns, answer); ok {
		return letters, true
	}
	return bareLetters(answer, expected)
}

func matchLetterPatterns(patterns []*regexp.Regexp, answer string) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(answer)
		if m == nil {
			continue
		}
		// Take the last non-empty capture group — the letters.
		for i := len(m) - 1; i >= 1; i-- {
			if m[i] == "" {
				continue
			}
			if letters := cleanLetters(m[i]); letters != "" {
				return letters, true
			}
			break
		}
	}
	return "", false
}

// #endregion

// #region bare-fallback

// bareToken is a terse single-word answer like "zodi".
var bareToken = regexp.MustCompile(`^\s*([a-zA-Z]+)\s*$`)

// bareUpper covers spelled-out uppercase sequences: "ZODI.", "C-I-R-C",
// "Z... E... P... H...", "A, R, and R." (connectives stripped first).
var bareUpper = regexp.MustCompile(`^[^a-zA-Z]*([A-Z](?:[,.\s-]*[A-Z])*)[,.\s]*$`)

// bareLetters accepts an answer that is nothing but the letter sequence
// itself. When the asking question fixed an expected length, any sequence
// no longer than that is taken; otherwise only terse uppercase answers
// qualify, so a chatty sentence is never swallowed whole.
func bareLetters(answer string, expected int) (string, bool) {
	stripped := stripConnectives(answer)

	var letters string
	if m := bareUpper.FindStringSubmatch(stripped); m != nil {
		letters = cleanLetters(m[1])
	} else if m := bareToken.FindStringSubmatch(stripped); m != nil {
		letters = cleanLetters(m[1])
	} else if expected > 0 && !hasLower(stripped) {
		letters = cleanLetters(stripped)
	}

	if letters == "" {
		return "", false
	}
	if expected > 0 && len(letters) > expected {
		return "", false
	}
	return letters, true
}

// #endregion
