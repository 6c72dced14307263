// Package planner turns a free-text request into a workout plan by scoring
// catalog videos with an additive keyword heuristic.
package planner

import (
	"context"
	"sort"
	"time"

	"alcyxob/clipclass/internal/domain"
)

const (
	DefaultMaxResults      = 5
	DefaultFallbackResults = 3
	mixedCategory          = "Mixed"
)

// Options tunes the planner. Zero values fall back to the defaults.
type Options struct {
	MaxResults      int
	FallbackResults int
	Delay           time.Duration // Pacing pause before a plan is returned; zero disables it
	Weights         Weights
}

// Match is a video with the score it earned for a query.
type Match struct {
	Video domain.Video
	Score int
}

// Planner is stateless apart from its options and safe for concurrent use.
type Planner struct {
	opts Options
}

// New creates a Planner, filling in defaults for unset options.
func New(opts Options) *Planner {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.FallbackResults <= 0 {
		opts.FallbackResults = DefaultFallbackResults
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Weights.IsZero() {
		opts.Weights = DefaultWeights()
	}
	return &Planner{opts: opts}
}

// Options returns the effective options.
func (p *Planner) Options() Options {
	return p.opts
}

// Rank scores every video, drops the zero scores and orders the rest by
// descending score. Ties keep catalog order.
func (p *Planner) Rank(videos []domain.Video, q Query) []Match {
	matches := make([]Match, 0, len(videos))
	for _, v := range videos {
		if s := Score(v, q, p.opts.Weights); s > 0 {
			matches = append(matches, Match{Video: v, Score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Generate builds a plan after the configured pacing delay.
// The only error is ctx being done while waiting.
func (p *Planner) Generate(ctx context.Context, videos []domain.Video, query string) (*domain.WorkoutPlan, error) {
	if p.opts.Delay > 0 {
		timer := time.NewTimer(p.opts.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return p.Build(videos, query), nil
}

// Build is the pure selection step: rank, fall back if nothing matched,
// then derive the plan labels and narration.
func (p *Planner) Build(videos []domain.Video, query string) *domain.WorkoutPlan {
	q := ParseQuery(query)

	var (
		selected []Match
		strategy domain.PlanStrategy
	)

	if ranked := p.Rank(videos, q); len(ranked) > 0 {
		selected = ranked[:min(len(ranked), p.opts.MaxResults)]
		strategy = domain.StrategyScored
	} else if byLevel := p.byDifficulty(videos, InferDifficulty(q)); len(byLevel) > 0 {
		selected = byLevel
		strategy = domain.StrategyDifficulty
	} else if len(videos) > 0 {
		selected = toMatches(videos[:min(len(videos), p.opts.FallbackResults)])
		strategy = domain.StrategyCatalog
	} else {
		strategy = domain.StrategyEmpty
	}

	plan := &domain.WorkoutPlan{
		Query:         q.Raw,
		MatchedVideos: make([]domain.Video, 0, len(selected)),
		Scores:        make([]int, 0, len(selected)),
		Category:      mixedCategory,
		Difficulty:    domain.DifficultyBeginner,
		Goal:          InferGoal(q),
		Strategy:      strategy,
	}
	for _, m := range selected {
		plan.MatchedVideos = append(plan.MatchedVideos, m.Video.Clone())
		plan.Scores = append(plan.Scores, m.Score)
		plan.TotalDuration += m.Video.Duration
	}
	if len(selected) > 0 {
		first := selected[0].Video
		plan.Category = first.Category
		plan.Difficulty = first.Difficulty
	}
	plan.AudioNotes = AudioNotes(len(selected), plan.Difficulty, plan.Goal, q.Raw)
	return plan
}

func (p *Planner) byDifficulty(videos []domain.Video, level domain.Difficulty) []Match {
	out := make([]Match, 0, p.opts.FallbackResults)
	for _, v := range videos {
		if v.Difficulty != level {
			continue
		}
		out = append(out, Match{Video: v})
		if len(out) == p.opts.FallbackResults {
			break
		}
	}
	return out
}

func toMatches(videos []domain.Video) []Match {
	out := make([]Match, len(videos))
	for i, v := range videos {
		out[i] = Match{Video: v}
	}
	return out
}
