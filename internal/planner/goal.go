package planner

import (
	"strings"

	"alcyxob/clipclass/internal/domain"
)

// DefaultGoal is used when no keyword group matches.
const DefaultGoal = "general fitness"

// goalGroups is checked in order; the first group with a keyword anywhere in
// the query text wins.
var goalGroups = []struct {
	goal     string
	keywords []string
}{
	{"muscle building", []string{"strength", "muscle", "mass", "power"}},
	{"fat loss", []string{"fat", "loss", "weight", "burning", "cutting"}},
	{"flexibility", []string{"flexibility", "stretching", "yoga"}},
	{"cardiovascular health", []string{"cardio", "endurance", "running"}},
	{"strength training", []string{"deadlift", "lifting", "powerlifting"}},
	{"conditioning", []string{"hiit", "conditioning", "athletic"}},
}

// InferGoal maps the query onto a training goal label.
func InferGoal(q Query) string {
	for _, g := range goalGroups {
		for _, kw := range g.keywords {
			if q.Mentions(kw) {
				return g.goal
			}
		}
	}
	return DefaultGoal
}

// InferDifficulty picks the level the query asks for, defaulting to beginner.
func InferDifficulty(q Query) domain.Difficulty {
	switch {
	case q.Mentions("advanced") || q.Mentions("expert"):
		return domain.DifficultyAdvanced
	case q.Mentions("intermediate"):
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyBeginner
	}
}

// Mentions reports whether word occurs anywhere in the lowercased query.
func (q Query) Mentions(word string) bool {
	return word != "" && strings.Contains(q.Text, word)
}
