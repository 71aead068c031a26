// Replay feeds a recorded question/answer transcript through the
// interpreter and reconstructor, printing what each answer contributed.
// Useful for debugging parsing offline, without a live oracle.
//
// Transcript format, one exchange per line pair:
//
//	Q: How many letters?
//	A: Six letters, young one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pdekker/merlin-solver/internal/clue"
	"github.com/pdekker/merlin-solver/internal/interpret"
	"github.com/pdekker/merlin-solver/internal/plan"
	"github.com/pdekker/merlin-solver/internal/reconstruct"
)

// #region main

func main() {
	path := flag.String("transcript", "", "path to transcript file")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --transcript path/to/transcript.txt")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open transcript: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	st := clue.NewStore()
	scanner := bufio.NewScanner(f)
	var question string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "Q:"):
			question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
		case strings.HasPrefix(line, "A:"):
			answer := strings.TrimSpace(strings.TrimPrefix(line, "A:"))
			q := plan.ClassifyQuestion(question)
			updates := interpret.Interpret(answer, q, clue.SourcePrimary)
			st.ApplyAll(updates)
			fmt.Printf("Q: %s  [%s]\n", question, q.Intent)
			fmt.Printf("A: %s\n", answer)
			if len(updates) == 0 {
				fmt.Println("   no clues extracted")
				if interpret.IsDenial(answer) {
					fmt.Println("   (denial phrasing detected)")
				}
			}
			for _, u := range updates {
				printUpdate(u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read transcript: %v\n", err)
		os.Exit(2)
	}

	fmt.Println()
	if r, ok := reconstruct.Reconstruct(st); ok {
		fmt.Printf("reconstruction: %s (missing %d, conflicts %d)\n", r.Word, r.Missing, r.Conflicts)
		if !r.Complete() {
			fmt.Printf("frequency-filled: %s\n", reconstruct.FillFrequency(r).Word)
		}
	} else {
		fmt.Println("reconstruction: letter count unknown")
	}
	fmt.Printf("sufficient: %v\n", plan.HasSufficientLetters(st))
}

// #endregion main

// #region printing

func printUpdate(u clue.Update) {
	switch u.Kind {
	case clue.KindLetterCount:
		fmt.Printf("   letter_count = %d\n", u.Count)
	case clue.KindPrefix:
		fmt.Printf("   prefix = %q (%s)\n", u.Letters, u.Source)
	case clue.KindSuffix:
		if u.RefineLast {
			fmt.Printf("   suffix last letter = %q\n", u.Letters)
		} else {
			fmt.Printf("   suffix = %q (%s)\n", u.Letters, u.Source)
		}
	case clue.KindPinned:
		fmt.Printf("   letter[%d] = %q\n", u.Pos, u.Char)
	}
}

// #endregion printing
