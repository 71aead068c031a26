// Package reconstruct synthesizes the best candidate word from a clue
// store. It is a pure function over the store: evidence in, candidate out.
package reconstruct

// #region imports
import (
	"log"
	"strings"

	"github.com/pdekker/merlin-solver/internal/clue"
)

// #endregion

// #region result

// Placeholder marks a position with no evidence.
const Placeholder = '?'

// Result is one reconstruction pass over the store.
type Result struct {
	Word      string
	Missing   int // placeholder positions remaining
	Conflicts int // pinned letters that overwrote a different filled letter
}

// Complete reports whether every position was filled from evidence.
func (r Result) Complete() bool { return r.Missing == 0 }

// #endregion

// #region reconstruct

// Reconstruct builds a candidate of exactly the known length, unknown
// positions marked with Placeholder. Fill priority, highest first: a
// four-letter prefix and the single last letter (co-equal, disjoint for
// words of five or more letters), then a three-letter prefix into still
// unfilled positions, then remaining suffix letters into unfilled trailing
// positions, then every pinned letter unconditionally — pinned clues are
// ground truth even over prefix/suffix inference. Returns ok=false while
// the letter count is unknown.
func Reconstruct(st *clue.Store) (Result, bool) {
	n := st.LetterCount()
	if n == 0 {
		return Result{}, false
	}

	word := make([]byte, n)
	for i := range word {
		word[i] = Placeholder
	}

	prefixes := st.PrefixValues()
	suffix := st.Suffix()

	// Rule 1: a four-letter prefix fills positions 1-4, whichever slot
	// holds it.
	for _, p := range prefixes {
		if len(p) == 4 {
			fillPrefix(word, p)
			break
		}
	}

	// Rule 2: single-letter suffix fills the final position.
	if len(suffix) == 1 {
		word[n-1] = suffix[0]
	}

	// Rule 3: a three-letter prefix, only into unfilled positions.
	for _, p := range prefixes {
		if len(p) == 3 {
			fillUnfilledPrefix(word, p)
			break
		}
	}

	// Any other prefix length carries evidence too; lowest prefix priority.
	for _, p := range prefixes {
		if len(p) != 3 && len(p) != 4 {
			fillUnfilledPrefix(word, p)
		}
	}

	// Rule 4: longer suffixes fill unfilled trailing positions.
	if len(suffix) >= 2 {
		for i := 0; i < len(suffix); i++ {
			pos := n - len(suffix) + i
			if pos >= 0 && pos < n && word[pos] == Placeholder {
				word[pos] = suffix[i]
			}
		}
	}

	// Rule 5: pinned letters win over everything.
	conflicts := 0
	for pos, ch := range st.Pinned() {
		if pos < 1 || pos > n {
			continue
		}
		if word[pos-1] != Placeholder && word[pos-1] != ch {
			conflicts++
			log.Printf("pinned letter %q at position %d overrides %q", ch, pos, word[pos-1])
		}
		word[pos-1] = ch
	}

	missing := strings.Count(string(word), "?")
	return Result{Word: string(word), Missing: missing, Conflicts: conflicts}, true
}

func fillPrefix(word []byte, prefix string) {
	for i := 0; i < len(prefix) && i < len(word); i++ {
		word[i] = prefix[i]
	}
}

func fillUnfilledPrefix(word []byte, prefix string) {
	for i := 0; i < len(prefix) && i < len(word); i++ {
		if word[i] == Placeholder {
			word[i] = prefix[i]
		}
	}
}

// #endregion

// #region frequency-fill

// fillPool is frequency-ordered: vowels first, then common consonants.
var fillPool = []byte{'a', 'e', 'i', 'o', 'u', 'r', 's', 't', 'n', 'l'}

// FillFrequency replaces remaining placeholders round-robin from the fill
// pool, trading guessed filler for a guaranteed complete candidate. Used
// when a guess must be emitted despite missing evidence.
func FillFrequency(r Result) Result {
	if r.Missing == 0 {
		return r
	}
	word := []byte(r.Word)
	for i := range word {
		if word[i] == Placeholder {
			word[i] = fillPool[i%len(fillPool)]
		}
	}
	r.Word = string(word)
	r.Missing = 0
	return r
}

// #endregion

// #region validate

// Validate checks a candidate word against every clue in the store: exact
// length, prefix, suffix, and all pinned positions. Used to vet
// externally generated words before submission.
func Validate(word string, st *clue.Store) bool {
	n := st.LetterCount()
	if n == 0 || len(word) != n {
		return false
	}
	if prefix := st.Prefix(); prefix != "" {
		limit := len(prefix)
		if limit > n {
			limit = n
		}
		if !strings.HasPrefix(word, prefix[:limit]) {
			return false
		}
	}
	if suffix := st.Suffix(); suffix != "" && len(suffix) <= n {
		if !strings.HasSuffix(word, suffix) {
			return false
		}
	}
	for pos, ch := range st.Pinned() {
		if pos < 1 || pos > n {
			continue
		}
		if word[pos-1] != ch {
			return false
		}
	}
	return true
}

// #endregion
