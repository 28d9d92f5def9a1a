package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
)

func init() {
	decomposeCmd := &cobra.Command{
		Use:   "decompose <syllable>...",
		Short: "Split Hangul syllables into atomic jamo",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDecompose,
	}

	deriveCmd := &cobra.Command{
		Use:   "derive <answer> <guess>",
		Short: "Show the hints guess would receive against answer",
		Args:  cobra.ExactArgs(2),
		Run:   runDerive,
	}

	RootCmd.AddCommand(decomposeCmd, deriveCmd)
}

type decomposeOutput struct {
	Syllable string   `json:"syllable"`
	Jamo     []string `json:"jamo"`
}

func runDecompose(cmd *cobra.Command, args []string) {
	var out []decomposeOutput
	for _, arg := range args {
		// a whole word decomposes syllable by syllable
		for _, r := range strings.TrimSpace(arg) {
			jamo, err := hangul.DecomposeRune(r)
			if err != nil {
				exitErr("decompose", err)
			}
			d := decomposeOutput{Syllable: string(r), Jamo: make([]string, len(jamo))}
			for i, j := range jamo {
				d.Jamo[i] = j.String()
			}
			out = append(out, d)
		}
	}

	emit(cmd, out, func(w io.Writer) {
		for _, d := range out {
			fmt.Fprintf(w, "%s\t%s\n", d.Syllable, strings.Join(d.Jamo, " "))
		}
	})
}

type deriveOutput struct {
	Answer string    `json:"answer"`
	Guess  string    `json:"guess"`
	First  hint.Kind `json:"first"`
	Second hint.Kind `json:"second"`
}

func runDerive(cmd *cobra.Command, args []string) {
	answer, err := hangul.ParseWord(args[0])
	if err != nil {
		exitErr("derive", err)
	}
	guess, err := hangul.ParseWord(args[1])
	if err != nil {
		exitErr("derive", err)
	}
	p, err := hint.Derive(answer, guess)
	if err != nil {
		exitErr("derive", err)
	}

	k1, k2 := p.Kinds()
	out := deriveOutput{Answer: answer.String(), Guess: guess.String(), First: k1, Second: k2}
	emit(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s (%s %s)\n", paintKind(k1), paintKind(k2), k1.Alias(), k2.Alias())
	})
}
