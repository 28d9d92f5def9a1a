package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <answer>",
		Short: "Play a full game against a known answer",
		Args:  cobra.ExactArgs(1),
		Run:   runSolve,
	}
	addSolverFlags(solveCmd)

	candidatesCmd := &cobra.Command{
		Use:   "candidates",
		Short: "List the candidates left in the current session",
		Run:   runCandidates,
	}
	candidatesCmd.Flags().IntP("limit", "l", 0, "Max words listed (0 = all)")
	addSolverFlags(candidatesCmd)

	RootCmd.AddCommand(solveCmd, candidatesCmd)
}

type solveOutput struct {
	Answer  string        `json:"answer"`
	Guesses []hangul.Word `json:"guesses"`
	Turns   int           `json:"turns"`
}

func runSolve(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sv := newSolver(cmd, loadVocabulary(ctx, s))
	history, err := sv.SolveContext(ctx, args[0])
	if err != nil {
		exitErr("solve", err)
	}

	out := solveOutput{Answer: strings.TrimSpace(args[0]), Guesses: history, Turns: len(history)}
	emit(cmd, out, func(w io.Writer) {
		parts := make([]string, len(history))
		for i, g := range history {
			parts[i] = g.String()
		}
		fmt.Fprintf(w, "%s (%d turns)\n", strings.Join(parts, " -> "), out.Turns)
	})
}

type candidatesOutput struct {
	Session string        `json:"session,omitempty"`
	Count   int           `json:"count"`
	Words   []hangul.Word `json:"words"`
}

func runCandidates(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	ctx := cmd.Context()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := resolveSession(ctx, s, false)
	sv := newSolver(cmd, loadVocabulary(ctx, s))
	if err := replay(sv, sess); err != nil {
		exitErr("replay session", err)
	}

	words := sv.Candidates()
	out := candidatesOutput{Session: sessionID(sess), Count: len(words), Words: words}
	if limit > 0 && limit < len(words) {
		out.Words = words[:limit]
	}
	if out.Words == nil {
		out.Words = []hangul.Word{}
	}
	emit(cmd, out, func(w io.Writer) {
		for _, c := range out.Words {
			fmt.Fprintln(w, c)
		}
	})
}
