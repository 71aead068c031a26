package interpret

// #region imports
import "strings"

// #endregion

// #region phrases

// denialPhrases mark an answer as a refusal rather than a clue. The solver
// uses this to retry the same question once in a rephrased "what are ..."
// form; the interpreter itself never acts on it.
var denialPhrases = []string{
	"cannot", "can't", "sorry", "i am sorry", "i cannot", "i can't",
	"cannot tell", "cannot reveal", "cannot say", "cannot provide",
	"refuse", "unable", "not allowed", "forbidden", "restricted",
	"i'm sorry", "apologize", "regret", "unfortunately",
}

// #endregion

// #region is-denial

// IsDenial reports whether the answer reads as an apology or refusal.
func IsDenial(answer string) bool {
	if answer == "" {
		return false
	}
	lower := strings.ToLower(answer)
	for _, p := range denialPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// #endregion
