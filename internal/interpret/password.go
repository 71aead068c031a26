package interpret

// #region imports
import (
	"regexp"
	"strings"
)

// #endregion

// #region patterns

// passwordPatterns try to pull a bare password out of a direct answer to
// "What is the password?". Ordered from most to least specific.
var passwordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)the\s+password\s+is\s+(?:none\s+other\s+than\s+)?["']?([A-Z]+)["']?`),
	regexp.MustCompile(`(?i)password\s+(?:you\s+)?seek\s+is\s+["']?([A-Z]+)["']?`),
	regexp.MustCompile(`(?i)password\s+is\s+["']?([A-Z]+)["']?`),
	regexp.MustCompile(`"([A-Z]+)"`),
}

// #endregion

// #region extract

// ExtractPassword attempts to read a full password straight out of an
// answer. Falls back to a standalone uppercase word of four or more letters.
// The result is lower-cased with non-Latin characters filtered out.
func ExtractPassword(answer string) (string, bool) {
	for _, re := range passwordPatterns {
		if m := re.FindStringSubmatch(answer); m != nil {
			if word := filterWord(m[1]); word != "" {
				return word, true
			}
		}
	}

	// Standalone uppercase word, 4+ letters.
	for _, w := range strings.Fields(answer) {
		trimmed := strings.Trim(w, ".,!?;:'\"()")
		if len(trimmed) >= 4 && trimmed == strings.ToUpper(trimmed) && alphaOnly(trimmed) == trimmed {
			return strings.ToLower(trimmed), true
		}
	}

	return "", false
}

// filterWord keeps only ASCII letters, lower-cased.
func filterWord(word string) string {
	return strings.ToLower(alphaOnly(word))
}

// #endregion
