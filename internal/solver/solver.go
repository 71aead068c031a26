// Package solver runs the question/answer loop against the oracle: plan a
// question, interpret the answer into clues, reconstruct a candidate, and
// drive the backup questioning after a rejected guess. Strictly sequential;
// the question budget is the only cancellation mechanism inside the core.
package solver

// #region imports
import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/pdekker/merlin-solver/internal/clue"
	"github.com/pdekker/merlin-solver/internal/interpret"
	"github.com/pdekker/merlin-solver/internal/memory"
	"github.com/pdekker/merlin-solver/internal/oracle"
	"github.com/pdekker/merlin-solver/internal/plan"
)

// #endregion

// #region params

// Params are the injected limits and policy knobs for one solver.
type Params struct {
	Tier         Tier
	MaxQuestions int // acquisition-phase question budget
	MaxRetries   int // backup-phase submission budget, 0 = queue length
	PrefixLen    int // letters requested by the primary prefix question
}

// #endregion

// #region solver-struct

// Solver owns one attempt at a time. The clue store lives only for the
// duration of a level; a copy survives into the backup phase so evidence
// gathered before the failed guess is not lost.
type Solver struct {
	channel  oracle.Channel
	strategy Strategy
	planner  *plan.Planner
	mem      *memory.OutcomeMemory // nil = no outcome recording
	params   Params

	attemptID string
	exchanges []oracle.Exchange
}

// New wires a solver. mem may be nil.
func New(channel oracle.Channel, strategy Strategy, mem *memory.OutcomeMemory, params Params) *Solver {
	if params.MaxQuestions < 1 {
		params.MaxQuestions = 10
	}
	return &Solver{
		channel:  channel,
		strategy: strategy,
		planner:  plan.NewPlanner(params.PrefixLen),
		mem:      mem,
		params:   params,
	}
}

// #endregion

// #region solve-level

// SolveLevel runs one full attempt: optional direct-password opener on the
// first level, then acquisition, reconstruction, submission, and the backup
// strategy. Returns whether the level was cleared. Only channel and context
// failures surface as errors; everything else degrades to the next step.
func (s *Solver) SolveLevel(ctx context.Context, level int) (bool, error) {
	s.attemptID = uuid.NewString()
	s.exchanges = nil
	st := clue.NewStore()

	if level == 1 {
		cleared, err := s.tryDirectPassword(ctx, level)
		if err != nil {
			return false, err
		}
		if cleared {
			return true, nil
		}
	}

	if err := s.acquire(ctx, st, level); err != nil {
		return false, err
	}

	word, complete := s.strategy.Propose(ctx, st, s.exchanges)
	if word == "" {
		log.Printf("no candidate could be formed, level failed")
		return false, nil
	}

	if complete {
		accepted, err := s.channel.Submit(ctx, word)
		if err != nil {
			return false, err
		}
		if accepted {
			s.markAccepted()
			return true, nil
		}
	} else {
		log.Printf("candidate %q incomplete, skipping submission", word)
	}

	// Backup works on a clone so the acquisition evidence survives.
	return s.runBackup(ctx, st.Clone(), level)
}

// #endregion

// #region acquisition

// acquire runs the ask/parse loop until coverage is sufficient, the planner
// is done, the budget runs out, or the oracle stops answering.
func (s *Solver) acquire(ctx context.Context, st *clue.Store, level int) error {
	asked := 0
	for asked < s.params.MaxQuestions {
		q, ok := s.planner.Next(st)
		if !ok {
			return nil
		}

		answer, gotClue, err := s.askAndApply(ctx, q, st, level, "acquisition")
		if err != nil {
			return err
		}
		if answer == "" {
			log.Printf("no answer from oracle, proceeding with partial evidence")
			return nil
		}
		if !gotClue {
			log.Printf("no clues parsed from answer %q", answer)
		}

		asked++
		if plan.HasSufficientLetters(st) {
			return nil
		}
	}
	return nil
}

// askAndApply sends one question, interprets the answer, and merges the
// updates. A denial-style answer that yielded nothing triggers exactly one
// rephrased "what are ..." retry of the same question.
func (s *Solver) askAndApply(ctx context.Context, q plan.Question, st *clue.Store, level int, phase string) (string, bool, error) {
	answer, err := s.channel.Ask(ctx, q.Text)
	if err != nil {
		return "", false, fmt.Errorf("ask %q: %w", q.Text, err)
	}
	if answer == "" {
		return "", false, nil
	}
	s.exchanges = append(s.exchanges, oracle.Exchange{Question: q.Text, Answer: answer})

	src := clue.SourcePrimary
	if phase == "backup" {
		src = clue.SourceBackup
	}

	updates := s.strategy.Interpret(answer, q, src)
	rephrased := false
	if len(updates) == 0 && interpret.IsDenial(answer) {
		rephrased = true
		polite := "what are " + q.Text
		retryAnswer, err := s.channel.Ask(ctx, polite)
		if err != nil {
			return "", false, fmt.Errorf("ask %q: %w", polite, err)
		}
		if retryAnswer != "" {
			s.exchanges = append(s.exchanges, oracle.Exchange{Question: polite, Answer: retryAnswer})
			updates = s.strategy.Interpret(retryAnswer, q, src)
			answer = retryAnswer
		}
	}

	st.ApplyAll(updates)
	s.recordOutcome(level, phase, q, rephrased, len(updates) > 0)
	return answer, len(updates) > 0, nil
}

// #endregion

// #region direct-password

// tryDirectPassword asks for the password outright — the oracle on the
// first level tends to just say it — and submits any word it can extract.
func (s *Solver) tryDirectPassword(ctx context.Context, level int) (bool, error) {
	q := plan.Question{Text: "What is the password?", Intent: plan.IntentPassword}
	answer, err := s.channel.Ask(ctx, q.Text)
	if err != nil {
		return false, fmt.Errorf("ask %q: %w", q.Text, err)
	}
	if answer == "" || interpret.IsDenial(answer) {
		s.recordOutcome(level, "acquisition", q, false, false)
		return false, nil
	}
	s.exchanges = append(s.exchanges, oracle.Exchange{Question: q.Text, Answer: answer})

	word, ok := interpret.ExtractPassword(answer)
	s.recordOutcome(level, "acquisition", q, false, ok)
	if !ok {
		log.Printf("could not extract a password from %q", answer)
		return false, nil
	}

	accepted, err := s.channel.Submit(ctx, word)
	if err != nil {
		return false, err
	}
	if accepted {
		s.markAccepted()
	}
	return accepted, nil
}

// #endregion

// #region outcome-recording

func (s *Solver) recordOutcome(level int, phase string, q plan.Question, rephrased, extracted bool) {
	err := s.mem.Record(memory.OutcomeRecord{
		AttemptID:     s.attemptID,
		Level:         level,
		Phase:         phase,
		QuestionKind:  string(q.Intent),
		QuestionText:  q.Text,
		Rephrased:     rephrased,
		ClueExtracted: extracted,
	})
	if err != nil {
		log.Printf("record outcome: %v", err)
	}
}

func (s *Solver) markAccepted() {
	if err := s.mem.MarkAccepted(s.attemptID); err != nil {
		log.Printf("mark accepted: %v", err)
	}
}

// #endregion
