package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/simulator"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

func init() {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Solve every answer and report guess counts",
		Long:  "Solve every eligible word (or the words of --answers) and report the guess distribution.",
		Run:   runSimulate,
	}

	cmd.Flags().String("answers", "", "File of answers, one word per line (default: every eligible word)")
	cmd.Flags().IntP("jobs", "j", 1, "Games played concurrently")
	cmd.Flags().Bool("histories", false, "Include every guess history in the output")
	addSolverFlags(cmd)

	RootCmd.AddCommand(cmd)
}

type simulateOutput struct {
	*simulator.Summary
	Histories map[hangul.Word][]hangul.Word `json:"histories,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) {
	answersPath, _ := cmd.Flags().GetString("answers")
	jobs, _ := cmd.Flags().GetInt("jobs")
	withHistories, _ := cmd.Flags().GetBool("histories")
	progress, _ := cmd.Flags().GetBool("progress")
	ctx := cmd.Context()

	var answers []hangul.Word
	if answersPath != "" {
		f, err := os.Open(answersPath)
		if err != nil {
			exitErr("open answers", err)
		}
		answers, err = vocab.ReadWordList(f)
		f.Close()
		if err != nil {
			exitErr("read answers", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	opts := simulator.Options{Workers: jobs, Logger: logger}
	if progress {
		opts.Progress = os.Stderr
	}
	sim, err := simulator.New(loadVocabulary(ctx, s), solverConfig(cmd), opts)
	if err != nil {
		exitErr("new simulator", err)
	}

	sum, err := sim.Run(ctx, answers)
	if err != nil {
		exitErr("simulate", err)
	}

	out := simulateOutput{Summary: sum}
	if withHistories {
		out.Histories = sim.Export()
	}
	emit(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "games=%d mean=%.3f max=%d\n", sum.Games, sum.MeanGuesses, sum.MaxGuesses)
		for _, n := range slices.Sorted(maps.Keys(sum.Distribution)) {
			fmt.Fprintf(w, "%2d: %d\n", n, sum.Distribution[n])
		}
		if len(sum.Hardest) > 0 {
			fmt.Fprintf(w, "hardest: %v\n", sum.Hardest)
		}
	})
}
