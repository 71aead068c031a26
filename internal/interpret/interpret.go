// Package interpret turns the oracle's free-text answers into structured
// clue updates. Interpretation is context-gated: when the asking question's
// intent is known, only that clue type is attempted, so a stray number in an
// unrelated answer is never misread as the letter count. Each clue type has
// an ordered pattern table; the first match wins. No match means no update —
// the interpreter never fabricates a clue.
package interpret

// #region imports
import (
	"strings"
	"unicode"

	"github.com/pdekker/merlin-solver/internal/clue"
	"github.com/pdekker/merlin-solver/internal/plan"
)

// #endregion

// #region interpret

// Interpret extracts zero or more clue updates from answer. The question
// that elicited the answer gates which pattern tables run; src records
// whether the evidence belongs to the acquisition or the backup phase.
func Interpret(answer string, q plan.Question, src clue.Source) []clue.Update {
	if strings.TrimSpace(answer) == "" {
		return nil
	}

	var updates []clue.Update

	switch q.Intent {
	case plan.IntentCount:
		if n, ok := extractLetterCount(answer); ok {
			updates = append(updates, clue.Update{Kind: clue.KindLetterCount, Count: n})
		}
	case plan.IntentPrefix:
		if letters, ok := extractPrefix(answer, q.ExpectedLen); ok {
			updates = append(updates, clue.Update{Kind: clue.KindPrefix, Letters: letters, Source: src})
		}
	case plan.IntentSuffix:
		if letters, ok := extractSuffix(answer, q.ExpectedLen); ok {
			updates = append(updates, clue.Update{
				Kind:       clue.KindSuffix,
				Letters:    letters,
				Source:     src,
				RefineLast: q.ExpectedLen == 1,
			})
		}
	case plan.IntentPosition:
		if pos, ch, ok := extractPinned(answer); ok {
			updates = append(updates, clue.Update{Kind: clue.KindPinned, Pos: pos, Char: ch})
		}
	case plan.IntentPassword:
		// The direct-password opener is handled by ExtractPassword; a
		// password answer carries no positional evidence.
	default:
		// Context unknown: try every clue type in priority order.
		if n, ok := extractLetterCount(answer); ok {
			updates = append(updates, clue.Update{Kind: clue.KindLetterCount, Count: n})
		}
		if letters, ok := extractPrefix(answer, 0); ok {
			updates = append(updates, clue.Update{Kind: clue.KindPrefix, Letters: letters, Source: src})
		}
		if letters, ok := extractSuffix(answer, 0); ok {
			updates = append(updates, clue.Update{Kind: clue.KindSuffix, Letters: letters, Source: src})
		}
		if pos, ch, ok := extractPinned(answer); ok {
			updates = append(updates, clue.Update{Kind: clue.KindPinned, Pos: pos, Char: ch})
		}
	}

	return updates
}

// #endregion

// #region cleanup

// cleanLetters lower-cases a captured letter sequence and strips connective
// tokens and every non-alphabetic rune, turning "C-I-R-C." or "A, R, and R."
// into "circ" / "arr".
func cleanLetters(raw string) string {
	return strings.ToLower(alphaOnly(stripConnectives(raw)))
}

func stripConnectives(s string) string {
	s = strings.ReplaceAll(s, ", and", "")
	s = strings.ReplaceAll(s, " and ", " ")
	return s
}

func alphaOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) != -1
}

// #endregion
