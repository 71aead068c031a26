package solver

// #region imports
import (
	"context"
	"fmt"
	"log"

	"github.com/pdekker/merlin-solver/internal/clue"
	"github.com/pdekker/merlin-solver/internal/plan"
)

// #endregion

// #region queue

// buildBackupQueue lays out the supplementary questions in fixed order:
// last letter, first three letters, every position from the 4th up, last
// two letters. Questions whose answer the store already holds at the right
// length are skipped.
func buildBackupQueue(st *clue.Store) []plan.Question {
	var queue []plan.Question

	if len(st.Suffix()) != 1 {
		queue = append(queue, plan.Question{
			Text:        "the last letter?",
			Intent:      plan.IntentSuffix,
			ExpectedLen: 1,
		})
	}
	if len(st.Prefix()) != 3 {
		queue = append(queue, plan.Question{
			Text:        "the first three letters?",
			Intent:      plan.IntentPrefix,
			ExpectedLen: 3,
		})
	}
	for pos := 4; pos <= st.LetterCount(); pos++ {
		queue = append(queue, plan.Question{
			Text:     fmt.Sprintf("the %s letter?", plan.Ordinal(pos)),
			Intent:   plan.IntentPosition,
			Position: pos,
		})
	}
	if len(st.Suffix()) != 2 {
		queue = append(queue, plan.Question{
			Text:        "the last two letters?",
			Intent:      plan.IntentSuffix,
			ExpectedLen: 2,
		})
	}

	return queue
}

// #endregion

// #region run

// runBackup asks the supplementary questions one at a time, offering an
// updated reconstruction for submission after each answer that improves the
// store. Returns success at the first accepted submission; when the queue
// is exhausted and the word length is exactly 7, two length-adjusted
// candidates (6 and 8) are tried without requesting new evidence.
func (s *Solver) runBackup(ctx context.Context, st *clue.Store, level int) (bool, error) {
	if st.LetterCount() == 0 {
		return false, nil
	}

	budget := s.params.MaxRetries
	queue := buildBackupQueue(st)
	submissions := 0

	for _, q := range queue {
		if budget > 0 && submissions >= budget {
			log.Printf("backup submission budget exhausted")
			return false, nil
		}

		answer, gotClue, err := s.askAndApply(ctx, q, st, level, "backup")
		if err != nil {
			return false, err
		}
		if answer == "" {
			log.Printf("no answer from oracle, stopping backup")
			return false, nil
		}
		if !gotClue {
			continue
		}

		word, ok := s.strategy.Refine(ctx, st, s.exchanges)
		if !ok {
			continue
		}
		accepted, err := s.channel.Submit(ctx, word)
		if err != nil {
			return false, err
		}
		submissions++
		if accepted {
			s.markAccepted()
			return true, nil
		}
	}

	return s.tryLengthVariants(ctx, st)
}

// #endregion

// #region length-variants

// tryLengthVariants handles the oracle's habit of miscounting 7-letter
// words: reconstruct with the length overridden to 6 and 8 and offer each.
func (s *Solver) tryLengthVariants(ctx context.Context, st *clue.Store) (bool, error) {
	if st.LetterCount() != 7 {
		return false, nil
	}

	for _, n := range []int{6, 8} {
		variant := st.WithLetterCount(n)
		word, ok := s.strategy.Refine(ctx, variant, s.exchanges)
		if !ok {
			continue
		}
		log.Printf("trying length-%d candidate %q", n, word)
		accepted, err := s.channel.Submit(ctx, word)
		if err != nil {
			return false, err
		}
		if accepted {
			s.markAccepted()
			return true, nil
		}
	}
	return false, nil
}

// #endregion
