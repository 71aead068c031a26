package oracle

// #region imports
import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// #endregion

// #region console

// Console is the manual copy/paste channel: it prints each question for the
// operator to relay to the game and reads the oracle's reply back from a
// reader, normally stdin.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole builds a console channel over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// #endregion

// #region ask

// Ask prints the question and returns the pasted reply. An empty line means
// no answer was obtained.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(c.out, "\nASK MERLIN:\n  %s\n", question)
	fmt.Fprint(c.out, "MERLIN'S RESPONSE: ")
	if !c.in.Scan() {
		return "", c.in.Err()
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// #endregion

// #region submit

// Submit prints the candidate and asks the operator whether the game
// accepted it.
func (c *Console) Submit(ctx context.Context, candidate string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "\nWORD GUESS:\n  %s\n", candidate)
	fmt.Fprint(c.out, "Was the guess correct? (y/n): ")
	if !c.in.Scan() {
		return false, c.in.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes", nil
}

// #endregion
