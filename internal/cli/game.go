package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/solver"
	"github.com/Jaesu26/pairrot-solver/internal/store"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// addSolverFlags registers flags that override the configured solver settings.
func addSolverFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("strategy", "", "Scoring strategy: auto, exhaustive, heuristic, sampled")
	f.String("reduction", "", "Exhaustive reduction: mean or max")
	f.Int("threshold", 0, "auto scores exhaustively at or below this many candidates")
	f.Uint64("seed", 0, "Seed for the sampled strategy")
	f.Int("workers", 0, "Parallel scoring workers (0 = GOMAXPROCS)")
	f.Bool("include-maybe", true, "Treat maybe_possible words as candidates")
	f.String("first-guess", "", "Opening guess returned without scoring")
	f.Bool("progress", false, "Show a progress bar on stderr while scoring")
}

// solverConfig returns the configured solver settings with flag overrides applied.
func solverConfig(cmd *cobra.Command) solver.Config {
	c := cfg.Solver
	f := cmd.Flags()
	if f.Changed("strategy") {
		v, _ := f.GetString("strategy")
		c.Strategy = solver.Strategy(v)
	}
	if f.Changed("reduction") {
		v, _ := f.GetString("reduction")
		c.Reduction = solver.Reduction(v)
	}
	if f.Changed("threshold") {
		c.Threshold, _ = f.GetInt("threshold")
	}
	if f.Changed("seed") {
		c.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("include-maybe") {
		c.IncludeMaybe, _ = f.GetBool("include-maybe")
	}
	if f.Changed("first-guess") {
		c.FirstGuess, _ = f.GetString("first-guess")
	}
	if err := c.Validate(); err != nil {
		exitErr("solver config", err)
	}
	return c
}

// loadVocabulary reads the stored vocabulary, falling back to the built-in list
// when the database holds no words.
func loadVocabulary(ctx context.Context, s *store.SQLiteStore) vocab.Vocabulary {
	v, err := s.Vocabulary(ctx)
	if err != nil {
		exitErr("load vocabulary", err)
	}
	if v.Len() == 0 {
		logger.Info().Msg("vocabulary is empty, using the built-in word list (see `pairrot vocab init`)")
		return vocab.Default()
	}
	return v
}

func newSolver(cmd *cobra.Command, v vocab.Vocabulary) *solver.Solver {
	opts := []solver.Option{solver.WithLogger(logger)}
	if p, _ := cmd.Flags().GetBool("progress"); p {
		opts = append(opts, solver.WithProgress(os.Stderr))
	}
	sv, err := solver.New(v, solverConfig(cmd), opts...)
	if err != nil {
		exitErr("new solver", err)
	}
	return sv
}

// resolveSession returns the --session session, else the latest open one. When
// none is open it starts one if create is set, otherwise it returns nil.
func resolveSession(ctx context.Context, s *store.SQLiteStore, create bool) *model.Session {
	if sessionFlag != "" {
		sess, err := s.GetSession(ctx, sessionFlag)
		if err != nil {
			exitErr("get session", err)
		}
		return sess
	}

	open, err := s.ListSessions(ctx, 1, true)
	if err != nil {
		exitErr("list sessions", err)
	}
	if len(open) > 0 {
		sess, err := s.GetSession(ctx, open[0].ID)
		if err != nil {
			exitErr("get session", err)
		}
		return sess
	}
	if !create {
		return nil
	}

	sess, err := s.CreateSession(ctx)
	if err != nil {
		exitErr("create session", err)
	}
	logger.Info().Str("session", sess.ID).Msg("started session")
	return sess
}

// replay applies the recorded turns of sess to sv in order. A nil session is a no-op.
func replay(sv *solver.Solver, sess *model.Session) error {
	if sess == nil {
		return nil
	}
	for _, t := range sess.Turns {
		var err error
		switch t.Kind {
		case model.TurnHint:
			_, err = sv.Feedback(t.Guess, t.First, t.Second)
		case model.TurnJamo:
			_, err = sv.FeedbackJamo(t.Jamo)
		case model.TurnBan:
			_, err = sv.Ban(t.Guess)
		case model.TurnReset:
			sv.Reset()
		default:
			err = fmt.Errorf("unknown turn kind %q", t.Kind)
		}
		if err != nil {
			return fmt.Errorf("turn %d: %w", t.Seq, err)
		}
	}
	logger.Debug().Str("session", sess.ID).Int("turns", len(sess.Turns)).Int("candidates", sv.Len()).Msg("replayed")
	return nil
}

func sessionID(sess *model.Session) string {
	if sess == nil {
		return ""
	}
	return sess.ID
}
