package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/solver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next guess",
		Long:  "Suggest the next guess for the current session. Without an open session, every eligible word is a candidate.",
		Run:   runSuggest,
	}

	cmd.Flags().IntP("top", "n", 0, "Also list the N best guesses")
	cmd.Flags().Bool("fresh", false, "Ignore the session and start from every eligible word")
	addSolverFlags(cmd)

	RootCmd.AddCommand(cmd)
}

type suggestOutput struct {
	Session string `json:"session,omitempty"`
	solver.Suggestion
	Ranked []solver.Scored `json:"ranked,omitempty"`
}

func runSuggest(cmd *cobra.Command, args []string) {
	top, _ := cmd.Flags().GetInt("top")
	fresh, _ := cmd.Flags().GetBool("fresh")
	ctx := cmd.Context()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var sess *model.Session
	if !fresh {
		sess = resolveSession(ctx, s, false)
	}
	sv := newSolver(cmd, loadVocabulary(ctx, s))
	if err := replay(sv, sess); err != nil {
		exitErr("replay session", err)
	}

	sug, err := sv.SuggestContext(ctx)
	if err != nil {
		exitErr("suggest", err)
	}
	out := suggestOutput{Session: sessionID(sess), Suggestion: sug}
	if top > 0 {
		out.Ranked, _, err = sv.Rank(ctx, top)
		if err != nil {
			exitErr("rank", err)
		}
	}

	emit(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%s\tscore=%.4g\tcandidates=%d\n", sug.Word, sug.Strategy, sug.Score, sug.Candidates)
		for i, r := range out.Ranked {
			fmt.Fprintf(w, "%3d. %s\t%.4g\n", i+1, r.Word, r.Score)
		}
	})
}
