package plan

// #region imports
import "strings"

// #endregion

// #region intent

// Intent is what a question is trying to learn. The interpreter gates its
// pattern tables on this so a stray number in an unrelated answer is never
// misread as, say, the letter count.
type Intent string

const (
	IntentCount    Intent = "count"
	IntentPrefix   Intent = "prefix"
	IntentSuffix   Intent = "suffix"
	IntentPosition Intent = "position"
	IntentPassword Intent = "password"
	IntentUnknown  Intent = "unknown"
)

// #endregion

// #region question

// Question is one prompt for the oracle plus the context needed to
// interpret its answer.
type Question struct {
	Text        string
	Intent      Intent
	Position    int // 1-indexed target position for IntentPosition
	ExpectedLen int // expected letters in the answer for prefix/suffix asks, 0 = unknown
}

// #endregion

// #region classify

var ordinalTokens = []string{
	"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th", "10th",
	"11th", "12th",
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth",
}

// ClassifyQuestion infers a Question from bare prompt text. Used when
// replaying transcripts where only the raw text survives; the live solver
// always carries the full Question through.
func ClassifyQuestion(text string) Question {
	lower := strings.ToLower(text)
	q := Question{Text: text, Intent: IntentUnknown}

	switch {
	case strings.Contains(lower, "how many letters"):
		q.Intent = IntentCount
	case strings.Contains(lower, "what is the password"):
		q.Intent = IntentPassword
	case strings.Contains(lower, "first"):
		q.Intent = IntentPrefix
		q.ExpectedLen = spelledCount(lower)
	case strings.Contains(lower, "last"):
		q.Intent = IntentSuffix
		q.ExpectedLen = spelledCount(lower)
		if q.ExpectedLen == 0 && strings.Contains(lower, "last letter") {
			q.ExpectedLen = 1
		}
	default:
		for _, tok := range ordinalTokens {
			if strings.Contains(lower, tok+" letter") {
				q.Intent = IntentPosition
				q.Position = ordinalValue(tok)
				break
			}
		}
	}
	return q
}

// spelledCount picks the fragment length out of phrases like "first three
// letters" or "last two letters".
func spelledCount(lower string) int {
	counts := map[string]int{"one": 1, "two": 2, "three": 3, "four": 4, "five": 5}
	for word, n := range counts {
		if strings.Contains(lower, word+" letter") {
			return n
		}
	}
	return 0
}

func ordinalValue(tok string) int {
	values := map[string]int{
		"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "5th": 5, "6th": 6,
		"7th": 7, "8th": 8, "9th": 9, "10th": 10, "11th": 11, "12th": 12,
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	}
	return values[tok]
}

// #endregion
