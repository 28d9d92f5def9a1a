package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/solver"
	"github.com/Jaesu26/pairrot-solver/internal/store"
)

func init() {
	feedbackCmd := &cobra.Command{
		Use:   "feedback <guess> <first> <second>",
		Short: "Record the hints a guess received",
		Long: "Record the hints a guess received and narrow the candidates. Hints are one of\n" +
			"사과 바나나 가지 마늘 버섯 당근 for each syllable. Starts a session when none is open.",
		Args: cobra.ExactArgs(3),
		Run:  runFeedback,
	}

	jamoCmd := &cobra.Command{
		Use:   "jamo <jamo>",
		Short: "Keep only candidates containing a jamo",
		Args:  cobra.ExactArgs(1),
		Run:   runJamo,
	}

	banCmd := &cobra.Command{
		Use:   "ban <word>",
		Short: "Drop every candidate sharing a jamo with word",
		Args:  cobra.ExactArgs(1),
		Run:   runBan,
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore every eligible word in the current session",
		Run:   runReset,
	}

	for _, c := range []*cobra.Command{feedbackCmd, jamoCmd, banCmd, resetCmd} {
		c.Flags().Int("show", 10, "List the candidates when at most this many remain")
		RootCmd.AddCommand(c)
	}
}

type turnOutput struct {
	Session    string        `json:"session"`
	Seq        int           `json:"seq"`
	Remaining  int           `json:"remaining"`
	Solved     bool          `json:"solved,omitempty"`
	Candidates []hangul.Word `json:"candidates,omitempty"`
}

func runFeedback(cmd *cobra.Command, args []string) {
	guess := strings.TrimSpace(args[0])
	p := store.TurnParams{Kind: model.TurnHint, Guess: guess, First: args[1], Second: args[2]}
	runTurn(cmd, p, true, func(sv *solver.Solver) (int, error) {
		return sv.Feedback(guess, args[1], args[2])
	})
}

func runJamo(cmd *cobra.Command, args []string) {
	j := strings.TrimSpace(args[0])
	runTurn(cmd, store.TurnParams{Kind: model.TurnJamo, Jamo: j}, true, func(sv *solver.Solver) (int, error) {
		return sv.FeedbackJamo(j)
	})
}

func runBan(cmd *cobra.Command, args []string) {
	word := strings.TrimSpace(args[0])
	runTurn(cmd, store.TurnParams{Kind: model.TurnBan, Guess: word}, true, func(sv *solver.Solver) (int, error) {
		return sv.Ban(word)
	})
}

func runReset(cmd *cobra.Command, args []string) {
	runTurn(cmd, store.TurnParams{Kind: model.TurnReset}, false, func(sv *solver.Solver) (int, error) {
		sv.Reset()
		return sv.Len(), nil
	})
}

// runTurn replays the session, applies one turn and records it. Nothing is
// recorded when apply fails.
func runTurn(cmd *cobra.Command, p store.TurnParams, create bool, apply func(*solver.Solver) (int, error)) {
	show, _ := cmd.Flags().GetInt("show")
	ctx := cmd.Context()

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := resolveSession(ctx, s, create)
	if sess == nil {
		exitErr(p.Kind, errors.New("no open session"))
	}
	sv := newSolver(cmd, loadVocabulary(ctx, s))
	if err := replay(sv, sess); err != nil {
		exitErr("replay session", err)
	}

	n, err := apply(sv)
	if err != nil {
		exitErr(p.Kind, err)
	}

	p.SessionID = sess.ID
	p.Remaining = n
	turn, err := s.AppendTurn(ctx, p)
	if err != nil {
		exitErr("record turn", err)
	}

	out := turnOutput{Session: sess.ID, Seq: turn.Seq, Remaining: n}
	if p.Kind == model.TurnHint && p.First == hint.ExactMatch.String() && p.Second == hint.ExactMatch.String() {
		if err := s.FinishSession(ctx, sess.ID, p.Guess); err != nil {
			exitErr("finish session", err)
		}
		out.Solved = true
	}
	if n <= show {
		out.Candidates = sv.Candidates()
	}
	if n == 0 {
		logger.Warn().Str("session", sess.ID).Msg("no candidates left; check the hints or run `pairrot reset`")
	}

	emit(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "%s #%d: %d remaining", out.Session, out.Seq, out.Remaining)
		if out.Solved {
			fmt.Fprint(w, " (solved)")
		}
		fmt.Fprintln(w)
		for _, c := range out.Candidates {
			fmt.Fprintln(w, c)
		}
	})
}
