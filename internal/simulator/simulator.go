// Package simulator replays full games against every answer to measure a solver configuration.
package simulator

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/solver"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// Options controls a simulation run.
type Options struct {
	// Workers is the number of games played concurrently. 0 means one.
	Workers int
	// Progress, when set, receives a progress bar.
	Progress io.Writer
	Logger   zerolog.Logger
}

// Simulator plays games and keeps the guess history of each answer.
type Simulator struct {
	vocab vocab.Vocabulary
	cfg   solver.Config
	opts  Options

	mu        sync.Mutex
	histories map[hangul.Word][]hangul.Word
}

// New builds a simulator. Every worker gets its own solver over the shared vocabulary.
func New(v vocab.Vocabulary, cfg solver.Config, opts Options) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Simulator{
		vocab:     v,
		cfg:       cfg,
		opts:      opts,
		histories: map[hangul.Word][]hangul.Word{},
	}, nil
}

// Simulate plays a single game against answer and records its history.
func (sim *Simulator) Simulate(ctx context.Context, answer hangul.Word) ([]hangul.Word, error) {
	s, err := solver.New(sim.vocab, sim.cfg)
	if err != nil {
		return nil, err
	}
	return sim.play(ctx, s, answer)
}

func (sim *Simulator) play(ctx context.Context, s *solver.Solver, answer hangul.Word) ([]hangul.Word, error) {
	history, err := s.SolveWord(ctx, answer)
	if err != nil {
		return nil, err
	}
	sim.mu.Lock()
	sim.histories[answer] = history
	sim.mu.Unlock()
	return history, nil
}

// Run plays every answer. When answers is empty, every eligible word is played.
func (sim *Simulator) Run(ctx context.Context, answers []hangul.Word) (*Summary, error) {
	if len(answers) == 0 {
		answers = sim.vocab.Eligible(sim.cfg.IncludeMaybe)
	}
	start := time.Now()

	var bar *progressbar.ProgressBar
	if sim.opts.Progress != nil {
		bar = progressbar.NewOptions(len(answers),
			progressbar.OptionSetWriter(sim.opts.Progress),
			progressbar.OptionSetDescription("simulate"),
			progressbar.OptionShowCount(),
		)
	}

	jobs := make(chan hangul.Word)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for _, a := range answers {
			select {
			case jobs <- a:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range sim.opts.Workers {
		g.Go(func() error {
			s, err := solver.New(sim.vocab, sim.cfg)
			if err != nil {
				return err
			}
			for a := range jobs {
				if _, err := sim.play(ctx, s, a); err != nil {
					return err
				}
				if bar != nil {
					bar.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := sim.summarize(answers)
	sim.opts.Logger.Info().
		Int("games", sum.Games).
		Float64("mean_guesses", sum.MeanGuesses).
		Int("max_guesses", sum.MaxGuesses).
		Dur("took", time.Since(start)).
		Msg("simulation finished")
	return sum, nil
}

// Export returns a copy of every recorded history.
func (sim *Simulator) Export() map[hangul.Word][]hangul.Word {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	out := make(map[hangul.Word][]hangul.Word, len(sim.histories))
	for k, v := range sim.histories {
		out[k] = slices.Clone(v)
	}
	return out
}

// Clear drops every recorded history.
func (sim *Simulator) Clear() {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	clear(sim.histories)
}

// Summary aggregates guess counts over a run.
type Summary struct {
	Games        int         `json:"games"`
	MeanGuesses  float64     `json:"mean_guesses"`
	MaxGuesses   int         `json:"max_guesses"`
	Distribution map[int]int `json:"distribution"`
	Hardest      []string    `json:"hardest,omitempty"`
}

func (sim *Simulator) summarize(answers []hangul.Word) *Summary {
	sim.mu.Lock()
	defer sim.mu.Unlock()

	sum := &Summary{Distribution: map[int]int{}}
	total := 0
	for _, a := range answers {
		h, ok := sim.histories[a]
		if !ok {
			continue
		}
		n := len(h)
		sum.Games++
		total += n
		sum.Distribution[n]++
		switch {
		case n > sum.MaxGuesses:
			sum.MaxGuesses = n
			sum.Hardest = []string{a.String()}
		case n == sum.MaxGuesses:
			sum.Hardest = append(sum.Hardest, a.String())
		}
	}
	if sum.Games > 0 {
		sum.MeanGuesses = float64(total) / float64(sum.Games)
	}
	slices.Sort(sum.Hardest)
	return sum
}

// Answers returns the answers with a recorded history, in order.
func (sim *Simulator) Answers() []hangul.Word {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	return slices.SortedFunc(maps.Keys(sim.histories), hangul.Word.Compare)
}
