// Package plan decides the single next question to ask the oracle, driven
// only by what the clue store already holds.
package plan

// #region imports
import (
	"fmt"

	"github.com/pdekker/merlin-solver/internal/clue"
)

// #endregion

// #region planner

// Planner walks four ordered stages: letter count, prefix, suffix, then
// individual middle positions. It is stateless across calls; everything it
// needs is read from the store, so the caller owns the question budget.
type Planner struct {
	prefixLen int // letters requested in the prefix question, 3 or 4
	suffixLen int
}

// NewPlanner returns a planner requesting prefixLen leading letters.
// Values outside 3..4 fall back to 4.
func NewPlanner(prefixLen int) *Planner {
	if prefixLen != 3 && prefixLen != 4 {
		prefixLen = 4
	}
	return &Planner{prefixLen: prefixLen, suffixLen: 2}
}

// #endregion

// #region next

var countWords = map[int]string{1: "one", 2: "two", 3: "three", 4: "four", 5: "five"}

// Next returns the next question to ask, or ok=false when the store already
// covers the whole word. Exactly one question per call.
func (p *Planner) Next(st *clue.Store) (Question, bool) {
	n := st.LetterCount()
	if n == 0 {
		return Question{Text: "How many letters?", Intent: IntentCount}, true
	}

	if st.Prefix() == "" {
		return Question{
			Text:        fmt.Sprintf("What are the first %s letters?", countWords[p.prefixLen]),
			Intent:      IntentPrefix,
			ExpectedLen: p.prefixLen,
		}, true
	}

	if st.Suffix() == "" {
		return Question{
			Text:        fmt.Sprintf("What are the last %s letters?", countWords[p.suffixLen]),
			Intent:      IntentSuffix,
			ExpectedLen: p.suffixLen,
		}, true
	}

	pos, found := lowestUncovered(st)
	if !found {
		return Question{}, false
	}
	return Question{
		Text:     fmt.Sprintf("What is the %s letter?", Ordinal(pos)),
		Intent:   IntentPosition,
		Position: pos,
	}, true
}

// lowestUncovered finds the first position not covered by prefix, suffix, or
// a pinned letter.
func lowestUncovered(st *clue.Store) (int, bool) {
	n := st.LetterCount()
	a := len(st.Prefix())
	b := len(st.Suffix())
	if uniqueCoverage(a, b, n) >= n {
		return 0, false
	}
	for pos := a + 1; pos <= n-b; pos++ {
		if _, pinned := st.PinnedAt(pos); !pinned {
			return pos, true
		}
	}
	return 0, false
}

// #endregion

// #region sufficiency

// uniqueCoverage is the number of distinct positions covered by an a-letter
// prefix plus a b-letter suffix of an n-letter word. Positions covered by
// both ends are never double-counted.
func uniqueCoverage(a, b, n int) int {
	overlap := a + b - n
	if overlap < 0 {
		overlap = 0
	}
	return a + b - overlap
}

// HasSufficientLetters reports whether the store already determines every
// position: either prefix+suffix cover the word, or pinned letters fill
// every position the ends leave open.
func HasSufficientLetters(st *clue.Store) bool {
	n := st.LetterCount()
	if n == 0 {
		return false
	}
	a := len(st.Prefix())
	b := len(st.Suffix())
	unique := uniqueCoverage(a, b, n)
	if unique >= n {
		return true
	}

	missing := 0
	for pos := a + 1; pos <= n-b; pos++ {
		if _, pinned := st.PinnedAt(pos); !pinned {
			missing++
		}
	}
	return missing == 0
}

// #endregion

// #region ordinal

// Ordinal formats n as "1st", "2nd", "3rd", "4th", ... with the 11th-13th
// exception.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// #endregion
