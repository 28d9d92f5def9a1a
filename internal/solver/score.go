package solver

import (
	"cmp"
	"context"
	"slices"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
)

const numPatterns = hint.NumKinds * hint.NumKinds

// Scored is a candidate guess with its score under some strategy.
type Scored struct {
	Word  hangul.Word `json:"word"`
	Score float64     `json:"score"`
}

// buckets counts, for guess pred, how many candidates fall into each hint pattern.
// A candidate t stays after filtering by Derive(t', pred) exactly when both derive
// the same pattern, so a bucket's size is the remaining count for each of its members.
func buckets(pred hangul.Word, cands []hangul.Word) *[numPatterns]int {
	var b [numPatterns]int
	for _, t := range cands {
		b[hint.DeriveKey(t, pred)]++
	}
	return &b
}

// reduce folds pattern buckets into the score of one guess.
func reduce(b *[numPatterns]int, n int, r Reduction) float64 {
	if r == Max {
		return float64(slices.Max(b[:]))
	}
	sum := 0
	for _, c := range b {
		sum += c * c
	}
	return float64(sum) / float64(n)
}

// scorer computes one score per candidate, in candidate order.
type scorer struct {
	strategy  Strategy
	reduction Reduction
	workers   int
	progress  *progressbar.ProgressBar
	// samples[i] is the assumed answer index for candidate i under Sampled
	samples []int
}

// maximize reports whether higher scores are better.
func (sc *scorer) maximize() bool { return sc.strategy == Heuristic }

func (sc *scorer) score(ctx context.Context, cands []hangul.Word) ([]float64, error) {
	scores := make([]float64, len(cands))
	if sc.strategy == Heuristic {
		freq := hangul.FrequencyOf(cands)
		for i, w := range cands {
			scores[i] = float64(freq.Score(w))
		}
		return scores, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.workers)
	for i, pred := range cands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := buckets(pred, cands)
			switch sc.strategy {
			case Sampled:
				t := cands[sc.samples[i]]
				scores[i] = float64(b[hint.DeriveKey(t, pred)])
			default:
				scores[i] = reduce(b, len(cands), sc.reduction)
			}
			if sc.progress != nil {
				sc.progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// rank orders candidates best first. Ties go to the lexicographically smaller word.
func (sc *scorer) rank(cands []hangul.Word, scores []float64) []Scored {
	out := make([]Scored, len(cands))
	for i, w := range cands {
		out[i] = Scored{Word: w, Score: scores[i]}
	}
	slices.SortStableFunc(out, func(a, b Scored) int {
		c := cmp.Compare(a.Score, b.Score)
		if sc.maximize() {
			c = -c
		}
		if c != 0 {
			return c
		}
		return a.Word.Compare(b.Word)
	})
	return out
}

// best returns the index of the best candidate. cands must be in word order.
func (sc *scorer) best(scores []float64) int {
	bi := 0
	for i := 1; i < len(scores); i++ {
		if sc.maximize() && scores[i] > scores[bi] || !sc.maximize() && scores[i] < scores[bi] {
			bi = i
		}
	}
	return bi
}
