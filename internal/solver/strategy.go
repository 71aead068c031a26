package solver

// #region imports
import (
	"context"
	"log"

	"github.com/pdekker/merlin-solver/internal/clue"
	"github.com/pdekker/merlin-solver/internal/interpret"
	"github.com/pdekker/merlin-solver/internal/oracle"
	"github.com/pdekker/merlin-solver/internal/plan"
	"github.com/pdekker/merlin-solver/internal/reconstruct"
)

// #endregion

// #region tier

// Tier selects which interpreter/reconstructor implementation is active.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// #endregion

// #region strategy

// Strategy is the active interpreter/reconstructor pair. Implementations
// hold no puzzle state; everything flows through the store and exchanges.
type Strategy interface {
	// Interpret extracts clue updates from one answer.
	Interpret(answer string, q plan.Question, src clue.Source) []clue.Update

	// Propose returns the acquisition-phase candidate. complete=false means
	// the candidate still has unknown positions and the caller should skip
	// submission and move to the backup phase.
	Propose(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (word string, complete bool)

	// Refine returns a candidate after new backup evidence. Only candidates
	// fully determined by evidence are offered; no filler.
	Refine(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (word string, ok bool)
}

// #endregion

// #region select

// SelectStrategy maps a resource tier to its implementation. gen is only
// consulted for the high tier; passing nil degrades high to pattern-based.
func SelectStrategy(tier Tier, gen oracle.Generator) Strategy {
	switch tier {
	case TierHigh:
		if gen != nil {
			return &LanguageModelStrategy{gen: gen, fallback: PatternStrategy{}}
		}
		log.Printf("high tier requested without a generator, using pattern strategy")
		return PatternStrategy{}
	case TierMedium:
		return PatternStrategy{}
	default:
		// Low tier must always emit a complete guess, so placeholders are
		// filled from the frequency pool.
		return PatternStrategy{FillUnknown: true}
	}
}

// #endregion

// #region pattern-strategy

// PatternStrategy is the pure pattern-matching implementation: answers are
// parsed into the clue store and the candidate is rebuilt by priority fill.
type PatternStrategy struct {
	// FillUnknown fills placeholder positions from the frequency pool so
	// Propose always returns a complete candidate.
	FillUnknown bool
}

func (p PatternStrategy) Interpret(answer string, q plan.Question, src clue.Source) []clue.Update {
	return interpret.Interpret(answer, q, src)
}

func (p PatternStrategy) Propose(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (string, bool) {
	r, ok := reconstruct.Reconstruct(st)
	if !ok {
		return "", false
	}
	if r.Complete() {
		return r.Word, true
	}
	if p.FillUnknown {
		return reconstruct.FillFrequency(r).Word, true
	}
	return r.Word, false
}

func (p PatternStrategy) Refine(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (string, bool) {
	r, ok := reconstruct.Reconstruct(st)
	if !ok || !r.Complete() {
		return "", false
	}
	return r.Word, true
}

// #endregion

// #region llm-strategy

// LanguageModelStrategy hands the raw exchanges to an external generator
// and validates its word against the clue store. Answers are still parsed
// into the store so the planner can progress and validation has evidence.
// Any generator failure degrades to the pattern strategy.
type LanguageModelStrategy struct {
	gen      oracle.Generator
	fallback PatternStrategy
}

func (l *LanguageModelStrategy) Interpret(answer string, q plan.Question, src clue.Source) []clue.Update {
	return interpret.Interpret(answer, q, src)
}

func (l *LanguageModelStrategy) Propose(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (string, bool) {
	if word, ok := l.generate(ctx, st, exchanges); ok {
		return word, true
	}
	return l.fallback.Propose(ctx, st, exchanges)
}

func (l *LanguageModelStrategy) Refine(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (string, bool) {
	if word, ok := l.generate(ctx, st, exchanges); ok {
		return word, true
	}
	return l.fallback.Refine(ctx, st, exchanges)
}

func (l *LanguageModelStrategy) generate(ctx context.Context, st *clue.Store, exchanges []oracle.Exchange) (string, bool) {
	if len(exchanges) == 0 {
		return "", false
	}
	word, err := l.gen.Generate(ctx, exchanges)
	if err != nil {
		log.Printf("word generation failed: %v", err)
		return "", false
	}
	if !reconstruct.Validate(word, st) {
		log.Printf("generated word %q contradicts clues, falling back", word)
		return "", false
	}
	return word, true
}

// #endregion
