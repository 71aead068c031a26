// Package oracle defines the boundary to the external dialogue agent and
// the concrete channels that reach it.
package oracle

// #region imports
import "context"

// #endregion

// #region channel

// Channel delivers questions to the oracle and offers word guesses. An
// empty answer from Ask signals "no answer obtained"; the engine treats
// that as a hard stop for the current question, never as an error to abort
// on. Blocking and timeouts live behind this interface, not in the core.
type Channel interface {
	Ask(ctx context.Context, question string) (string, error)
	Submit(ctx context.Context, candidate string) (bool, error)
}

// #endregion

// #region exchange

// Exchange is one question/answer pair, kept raw for the language-model
// word generator.
type Exchange struct {
	Question string
	Answer   string
}

// #endregion

// #region generator

// Generator produces a whole-word guess directly from raw exchanges,
// bypassing the structured clue store. Only the high resource tier uses it.
type Generator interface {
	Generate(ctx context.Context, exchanges []Exchange) (string, error)
}

// #endregion
