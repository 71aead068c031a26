package interpret

// #region imports
import (
	"strconv"
	"strings"
)

// #endregion

// #region tables

const maxLetterCount = 12

var countWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// qualifierWords precede a count word when it measures a fragment rather
// than the whole word, as in "the first four letters are ...".
var qualifierWords = map[string]bool{"first": true, "last": true}

// #endregion

// #region extract

// extractLetterCount finds a bounded word length in an answer. Word forms
// ("one".."twelve") are preferred over digits to avoid false digit matches.
// A number counts only when it opens the answer, stands entirely alone, or
// sits near the word "letter" — and never when it qualifies a prefix/suffix
// phrase like "first four letters".
func extractLetterCount(answer string) (int, bool) {
	words := tokenize(answer)

	for i, w := range words {
		n, ok := countWords[w]
		if !ok {
			continue
		}
		if isQualified(words, i) {
			continue
		}
		if i == 0 || nearLetter(words, i, 2) {
			return n, true
		}
	}

	trimmed := strings.TrimSpace(strings.Trim(strings.TrimSpace(answer), "."))
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= maxLetterCount {
		return n, true
	}

	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil || n < 1 || n > maxLetterCount {
			continue
		}
		if isQualified(words, i) {
			continue
		}
		if nearLetter(words, i, 3) {
			return n, true
		}
	}

	return 0, false
}

// #endregion

// #region helpers

// tokenize lower-cases and splits an answer, trimming punctuation off each
// token so "letters," and "Six" compare cleanly.
func tokenize(answer string) []string {
	fields := strings.Fields(strings.ToLower(answer))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:'\"()")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isQualified(words []string, i int) bool {
	return i > 0 && qualifierWords[words[i-1]]
}

func nearLetter(words []string, i, window int) bool {
	lo := i - window
	if lo < 0 {
		lo = 0
	}
	hi := i + window
	if hi > len(words)-1 {
		hi = len(words) - 1
	}
	for j := lo; j <= hi; j++ {
		if strings.HasPrefix(words[j], "letter") {
			return true
		}
	}
	return false
}

// #endregion
