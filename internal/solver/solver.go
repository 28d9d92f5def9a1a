// Package solver suggests guesses for the two-syllable word game and narrows
// the candidate set from the hints each guess receives.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/Jaesu26/pairrot-solver/internal/candidate"
	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

var (
	// ErrEmptyCandidates is returned when no candidate is consistent with the feedback.
	ErrEmptyCandidates = errors.New("no candidates left")
	// ErrUnknownAnswer is returned by Solve for an answer outside the candidate pool.
	ErrUnknownAnswer = errors.New("answer is not an eligible word")
)

// Suggestion is the guess the solver recommends next.
type Suggestion struct {
	Word       hangul.Word `json:"word"`
	Score      float64     `json:"score"`
	Strategy   Strategy    `json:"strategy"`
	Candidates int         `json:"candidates"`
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithProgress renders a progress bar to w while scoring exhaustively.
func WithProgress(w io.Writer) Option {
	return func(s *Solver) { s.progress = w }
}

// Solver holds one game's candidate set. It is not safe for concurrent use; the
// vocabulary it was built from may be shared.
type Solver struct {
	cfg      Config
	cands    *candidate.Store
	first    *hangul.Word
	fresh    bool
	turn     uint64 // narrowing steps since Reset; reseeds sampling
	log      zerolog.Logger
	progress io.Writer
}

// New builds a solver whose candidate pool is the eligible words of v.
func New(v vocab.Vocabulary, cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:   cfg,
		cands: candidate.New(v.Eligible(cfg.IncludeMaybe)),
		log:   zerolog.Nop(),
	}
	if cfg.FirstGuess != "" {
		w, err := hangul.ParseWord(cfg.FirstGuess)
		if err != nil {
			return nil, fmt.Errorf("first guess: %w", err)
		}
		s.first = &w
	}
	for _, o := range opts {
		o(s)
	}
	s.Reset()
	return s, nil
}

// Reset restores the full eligible set.
func (s *Solver) Reset() {
	s.cands.Reset()
	s.fresh = true
	s.turn = 0
}

// Len returns the number of live candidates.
func (s *Solver) Len() int { return s.cands.Len() }

// Candidates returns the live candidates in order.
func (s *Solver) Candidates() []hangul.Word { return s.cands.Words() }

// Config returns the solver's configuration.
func (s *Solver) Config() Config { return s.cfg }

func (s *Solver) strategy(n int) Strategy {
	if s.cfg.Strategy != Auto {
		return s.cfg.Strategy
	}
	if n <= s.cfg.Threshold {
		return Exhaustive
	}
	return Heuristic
}

func (s *Solver) newScorer(cands []hangul.Word) *scorer {
	sc := &scorer{
		strategy:  s.strategy(len(cands)),
		reduction: s.cfg.Reduction,
		workers:   s.cfg.workers(),
	}
	if sc.strategy == Sampled {
		// samples depend only on Seed and turn
		rng := rand.New(rand.NewPCG(s.cfg.Seed, s.cfg.Seed^0x9e3779b97f4a7c15^s.turn))
		sc.samples = make([]int, len(cands))
		for i := range sc.samples {
			sc.samples[i] = rng.IntN(len(cands))
		}
	}
	if s.progress != nil && sc.strategy != Heuristic {
		sc.progress = progressbar.NewOptions(len(cands),
			progressbar.OptionSetWriter(s.progress),
			progressbar.OptionSetDescription(string(sc.strategy)),
			progressbar.OptionClearOnFinish(),
		)
	}
	return sc
}

// Suggest returns the best next guess. It does not change the candidate set.
func (s *Solver) Suggest() (Suggestion, error) {
	return s.SuggestContext(context.Background())
}

// SuggestContext is Suggest with cancellation of the scoring pass.
func (s *Solver) SuggestContext(ctx context.Context) (Suggestion, error) {
	cands := s.cands.Words()
	if len(cands) == 0 {
		return Suggestion{}, ErrEmptyCandidates
	}
	if s.fresh && s.first != nil && s.cands.Contains(*s.first) {
		return Suggestion{Word: *s.first, Strategy: Opening, Candidates: len(cands)}, nil
	}

	start := time.Now()
	sc := s.newScorer(cands)
	scores, err := sc.score(ctx, cands)
	if err != nil {
		return Suggestion{}, err
	}
	i := sc.best(scores)
	s.log.Debug().
		Str("strategy", string(sc.strategy)).
		Int("candidates", len(cands)).
		Str("word", cands[i].String()).
		Float64("score", scores[i]).
		Dur("took", time.Since(start)).
		Msg("suggest")
	return Suggestion{Word: cands[i], Score: scores[i], Strategy: sc.strategy, Candidates: len(cands)}, nil
}

// Rank returns up to limit candidates best first under the current strategy.
// A limit <= 0 returns every candidate.
func (s *Solver) Rank(ctx context.Context, limit int) ([]Scored, Strategy, error) {
	cands := s.cands.Words()
	if len(cands) == 0 {
		return nil, "", ErrEmptyCandidates
	}
	sc := s.newScorer(cands)
	scores, err := sc.score(ctx, cands)
	if err != nil {
		return nil, "", err
	}
	ranked := sc.rank(cands, scores)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, sc.strategy, nil
}

// Feedback narrows the candidates by the hints guess received. first and second
// must be canonical hint names. Nothing changes when any argument is invalid.
func (s *Solver) Feedback(guess, first, second string) (int, error) {
	w, err := hangul.ParseWord(guess)
	if err != nil {
		return s.Len(), err
	}
	p, err := hint.ParsePair(w, first, second)
	if err != nil {
		return s.Len(), err
	}
	return s.Apply(p), nil
}

// Apply narrows the candidates by an already-built hint pair.
func (s *Solver) Apply(p hint.Pair) int {
	before := s.Len()
	n := s.cands.Filter(p)
	s.fresh = false
	s.turn++
	k1, k2 := p.Kinds()
	s.log.Debug().
		Str("guess", p.Guess().String()).
		Str("first", k1.String()).
		Str("second", k2.String()).
		Int("before", before).
		Int("after", n).
		Msg("feedback")
	return n
}

// FeedbackJamo keeps only candidates containing jamo j in either syllable.
func (s *Solver) FeedbackJamo(j string) (int, error) {
	jamo, err := hangul.ParseJamo(j)
	if err != nil {
		return s.Len(), err
	}
	return s.ApplyJamo(jamo), nil
}

// ApplyJamo is FeedbackJamo for a parsed jamo.
func (s *Solver) ApplyJamo(j hangul.Jamo) int {
	n := s.cands.Keep(func(w hangul.Word) bool { return w.Contains(j) })
	s.fresh = false
	s.turn++
	s.log.Debug().Str("jamo", j.String()).Int("after", n).Msg("jamo feedback")
	return n
}

// Ban removes every candidate sharing a jamo with word, as if both syllables
// received NoMatch.
func (s *Solver) Ban(word string) (int, error) {
	return s.Feedback(word, hint.NoMatch.String(), hint.NoMatch.String())
}

// Solve resets the solver and plays against answer, returning every guess made.
// The last guess is the answer.
func (s *Solver) Solve(answer string) ([]hangul.Word, error) {
	return s.SolveContext(context.Background(), answer)
}

// SolveContext is Solve with cancellation checked between turns.
func (s *Solver) SolveContext(ctx context.Context, answer string) ([]hangul.Word, error) {
	a, err := hangul.ParseWord(answer)
	if err != nil {
		return nil, err
	}
	return s.SolveWord(ctx, a)
}

// SolveWord is SolveContext for a parsed answer.
func (s *Solver) SolveWord(ctx context.Context, answer hangul.Word) ([]hangul.Word, error) {
	if !s.cands.Eligible(answer) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnswer, answer)
	}
	s.Reset()
	var history []hangul.Word
	for {
		if err := ctx.Err(); err != nil {
			return history, err
		}
		sug, err := s.SuggestContext(ctx)
		if err != nil {
			return history, err
		}
		history = append(history, sug.Word)
		if sug.Word == answer {
			return history, nil
		}
		p, err := hint.Derive(answer, sug.Word)
		if err != nil {
			return history, err
		}
		s.Apply(p)
	}
}
