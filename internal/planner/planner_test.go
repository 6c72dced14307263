package planner

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alcyxob/clipclass/internal/domain"
)

func fixtureCatalog() []domain.Video {
	return []domain.Video{
		{ID: "hiit", Title: "Full Body HIIT Workout", Category: "HIIT", Difficulty: domain.DifficultyBeginner, MachineType: "bodyweight", Duration: 20, Tags: []string{"hiit", "cardio", "fat burning"}, Intensity: "high"},
		{ID: "strength", Title: "Advanced Strength Training with Dumbbells", Category: "Strength", Difficulty: domain.DifficultyAdvanced, MachineType: "dumbbells", Duration: 45, Description: "Heavy compound lifts for experienced athletes", Tags: []string{"strength", "dumbbells", "advanced", "muscle"}},
		{ID: "yoga", Title: "Relaxing Yoga Flow for Flexibility", Category: "Yoga", Difficulty: domain.DifficultyBeginner, MachineType: "bodyweight", Duration: 25, Tags: []string{"yoga", "flexibility"}, Intensity: "low"},
		{ID: "treadmill", Title: "Treadmill Cardio Blast", Category: "Cardio", Difficulty: domain.DifficultyIntermediate, MachineType: "treadmill", Duration: 30, Tags: []string{"cardio", "running"}},
		{ID: "barbell", Title: "Barbell Power Training", Category: "Strength", Difficulty: domain.DifficultyAdvanced, MachineType: "barbell", Duration: 50, Tags: []string{"powerlifting"}},
	}
}

func TestParseQueryDropsShortTokens(t *testing.T) {
	q := ParseQuery("  Go FOR a Run now ")
	require.Equal(t, "Go FOR a Run now", q.Raw)
	require.Equal(t, "go for a run now", q.Text)
	require.Equal(t, []string{"for", "run", "now"}, q.Tokens)

	empty := ParseQuery("")
	require.Empty(t, empty.Text)
	require.Empty(t, empty.Tokens)
}

func TestScoreAdvancedMuscleScenario(t *testing.T) {
	video := fixtureCatalog()[1]
	q := ParseQuery("advanced muscle building workout")

	// difficulty 60 + tags "advanced" and "muscle" 2x40; the title doesn't
	// contain the full phrase and nothing else overlaps.
	require.Equal(t, 140, Score(video, q, DefaultWeights()))

	plan := New(Options{}).Build(fixtureCatalog(), "advanced muscle building workout")
	require.Equal(t, domain.StrategyScored, plan.Strategy)
	require.Equal(t, "strength", plan.MatchedVideos[0].ID)
	require.Equal(t, 140, plan.Scores[0])
	require.Equal(t, domain.DifficultyAdvanced, plan.Difficulty)
	require.Equal(t, "muscle building", plan.Goal)
	require.Equal(t, "Strength", plan.Category)
}

func TestScoreSignals(t *testing.T) {
	w := DefaultWeights()
	cases := []struct {
		name  string
		video domain.Video
		query string
		want  int
	}{
		{"title phrase", domain.Video{Title: "Morning Yoga Flow"}, "yoga flow", w.Title},
		{"category in query", domain.Video{Title: "Circuit", Category: "HIIT"}, "hiit", w.Category},
		{"query in category", domain.Video{Title: "Session", Category: "Strength Training"}, "strength", w.Category},
		{"difficulty token", domain.Video{Title: "Session", Difficulty: domain.DifficultyIntermediate}, "intermediate plan", w.Difficulty},
		{"equipment overlap", domain.Video{Title: "Arm Day", MachineType: "dumbbells"}, "dumbbell curls", w.Equipment},
		{"tags per match", domain.Video{Title: "Session", Tags: []string{"core", "abs", "core strength"}}, "core", 2 * w.Tag},
		{"goals per match", domain.Video{Title: "Session", Goals: []string{"fat loss", "endurance"}}, "fat burning", w.Goal},
		{"body parts per match", domain.Video{Title: "Session", BodyParts: []string{"legs", "glutes"}}, "glutes and legs", 2 * w.BodyPart},
		{"description per token", domain.Video{Title: "Unwind", Description: "A gentle stretch for the lower back"}, "lower back stretch", 3 * w.Description},
		{"high intensity", domain.Video{Title: "Session", Intensity: "very high"}, "extreme session", w.Intensity},
		{"low intensity", domain.Video{Title: "Session", Intensity: "low"}, "relaxing evening", w.Intensity},
		{"intensity mismatch", domain.Video{Title: "Session", Intensity: "low"}, "intense", 0},
		{"no overlap", domain.Video{Title: "Session", Category: "Cardio"}, "pilates", 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Score(tc.video, ParseQuery(tc.query), w))
		})
	}
}

func TestScoreEmptyQueryMatchesNothing(t *testing.T) {
	q := ParseQuery("")
	for _, v := range fixtureCatalog() {
		require.Zero(t, Score(v, q, DefaultWeights()), v.ID)
	}
}

func TestScoreUsesConfiguredWeights(t *testing.T) {
	w := DefaultWeights()
	w.Tag = 7
	v := domain.Video{Title: "Session", Tags: []string{"core"}}
	require.Equal(t, 7, Score(v, ParseQuery("core"), w))
}

func TestAddingMatchingTagStrictlyIncreasesScore(t *testing.T) {
	q := ParseQuery("kettlebell swings")
	base := domain.Video{Title: "Hip Hinge Basics", Category: "Strength", Difficulty: domain.DifficultyBeginner, Tags: []string{"hinge"}}
	tagged := base.Clone()
	tagged.Tags = append(tagged.Tags, "kettlebell")

	require.Greater(t, Score(tagged, q, DefaultWeights()), Score(base, q, DefaultWeights()))
}

func TestBuildCapsResults(t *testing.T) {
	videos := make([]domain.Video, 0, 8)
	for i := 0; i < 8; i++ {
		videos = append(videos, domain.Video{ID: fmt.Sprintf("v%d", i), Title: "Session", Difficulty: domain.DifficultyBeginner, Tags: []string{"cardio"}, Duration: 10})
	}

	plan := New(Options{}).Build(videos, "cardio")
	require.Len(t, plan.MatchedVideos, DefaultMaxResults)
	require.Equal(t, 50, plan.TotalDuration)

	plan = New(Options{MaxResults: 3}).Build(videos, "cardio")
	require.Len(t, plan.MatchedVideos, 3)
}

func TestBuildOrdersByScoreAndKeepsCatalogOrderOnTies(t *testing.T) {
	videos := []domain.Video{
		{ID: "a", Title: "One", Difficulty: domain.DifficultyBeginner, Tags: []string{"core"}},
		{ID: "b", Title: "Two", Difficulty: domain.DifficultyBeginner, Tags: []string{"core", "core stability"}},
		{ID: "c", Title: "Three", Difficulty: domain.DifficultyBeginner, Tags: []string{"core"}},
	}

	plan := New(Options{}).Build(videos, "core")
	ids := make([]string, 0, len(plan.MatchedVideos))
	for _, v := range plan.MatchedVideos {
		ids = append(ids, v.ID)
	}
	require.Equal(t, []string{"b", "a", "c"}, ids)
	require.Equal(t, []int{80, 40, 40}, plan.Scores)
}

func TestBuildFallsBackToInferredDifficulty(t *testing.T) {
	videos := []domain.Video{
		{ID: "b1", Title: "One", Difficulty: domain.DifficultyBeginner},
		{ID: "a1", Title: "Two", Difficulty: domain.DifficultyAdvanced},
		{ID: "a2", Title: "Three", Difficulty: domain.DifficultyAdvanced},
		{ID: "a3", Title: "Four", Difficulty: domain.DifficultyAdvanced},
		{ID: "a4", Title: "Five", Difficulty: domain.DifficultyAdvanced},
	}

	plan := New(Options{}).Build(videos, "expert routine")
	require.Equal(t, domain.StrategyDifficulty, plan.Strategy)
	require.Len(t, plan.MatchedVideos, DefaultFallbackResults)
	require.Equal(t, "a1", plan.MatchedVideos[0].ID)
	require.Equal(t, []int{0, 0, 0}, plan.Scores)
	require.Equal(t, domain.DifficultyAdvanced, plan.Difficulty)
}

func TestBuildFallsBackToCatalogHead(t *testing.T) {
	videos := []domain.Video{
		{ID: "i1", Title: "One", Category: "Cardio", Difficulty: domain.DifficultyIntermediate},
		{ID: "i2", Title: "Two", Category: "Cardio", Difficulty: domain.DifficultyIntermediate},
		{ID: "a1", Title: "Three", Category: "Cardio", Difficulty: domain.DifficultyAdvanced},
		{ID: "a2", Title: "Four", Category: "Cardio", Difficulty: domain.DifficultyAdvanced},
	}

	plan := New(Options{}).Build(videos, "zzz qqq")
	require.Equal(t, domain.StrategyCatalog, plan.Strategy)
	require.Len(t, plan.MatchedVideos, 3)
	require.Equal(t, "i1", plan.MatchedVideos[0].ID)
	require.Equal(t, "Cardio", plan.Category)
	require.Equal(t, domain.DifficultyIntermediate, plan.Difficulty)
}

func TestBuildEmptyCatalog(t *testing.T) {
	plan := New(Options{}).Build(nil, "anything")
	require.NotNil(t, plan)
	require.Empty(t, plan.MatchedVideos)
	require.Equal(t, domain.StrategyEmpty, plan.Strategy)
	require.Equal(t, "Mixed", plan.Category)
	require.Equal(t, domain.DifficultyBeginner, plan.Difficulty)
	require.Empty(t, plan.AudioNotes)
}

func TestBuildEmptyQueryUsesBeginnerFallback(t *testing.T) {
	plan := New(Options{}).Build(fixtureCatalog(), "")
	require.Equal(t, domain.StrategyDifficulty, plan.Strategy)
	require.Len(t, plan.MatchedVideos, 2)
	require.Equal(t, "hiit", plan.MatchedVideos[0].ID)
	require.Equal(t, "yoga", plan.MatchedVideos[1].ID)
	require.Equal(t, DefaultGoal, plan.Goal)
}

func TestBuildAlwaysSelectsWithinCapForNonEmptyCatalog(t *testing.T) {
	queries := []string{"", "x", "advanced", "cardio running", "yoga flexibility", "barbell power", "something unrelated entirely", "hiit"}
	p := New(Options{})
	for _, q := range queries {
		plan := p.Build(fixtureCatalog(), q)
		require.GreaterOrEqual(t, len(plan.MatchedVideos), 1, q)
		require.LessOrEqual(t, len(plan.MatchedVideos), DefaultMaxResults, q)
		require.Len(t, plan.AudioNotes, len(plan.MatchedVideos)+1, q)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	p := New(Options{})
	catalog := fixtureCatalog()
	first := p.Build(catalog, "strength training with barbell")
	second := p.Build(catalog, "strength training with barbell")
	require.Equal(t, first, second)
}

func TestBuildDoesNotShareSlicesWithCatalog(t *testing.T) {
	catalog := fixtureCatalog()
	plan := New(Options{}).Build(catalog, "yoga")
	plan.MatchedVideos[0].Tags[0] = "mutated"
	require.Equal(t, "yoga", catalog[2].Tags[0])
}

func TestInferGoal(t *testing.T) {
	cases := map[string]string{
		"build muscle fast":             "muscle building",
		"fat burning circuit":           "fat loss",
		"morning stretching":            "flexibility",
		"endurance base":                "cardiovascular health",
		"deadlift technique":            "strength training",
		"athletic conditioning":         "conditioning",
		"quick session":                 DefaultGoal,
		"strength and cardio":           "muscle building",
		"powerlifting meet prep":        "strength training",
		"weight loss with yoga stretch": "fat loss",
		"I want more strength.":         "muscle building",
		"strength, please":              "muscle building",
		"muscle-building plan":          "muscle building",
		"fat-loss circuit":              "fat loss",
		"yoga/stretching":               "flexibility",
	}
	for query, want := range cases {
		require.Equal(t, want, InferGoal(ParseQuery(query)), query)
	}
}

func TestInferDifficulty(t *testing.T) {
	require.Equal(t, domain.DifficultyAdvanced, InferDifficulty(ParseQuery("Expert level")))
	require.Equal(t, domain.DifficultyAdvanced, InferDifficulty(ParseQuery("advanced")))
	require.Equal(t, domain.DifficultyIntermediate, InferDifficulty(ParseQuery("intermediate cardio")))
	require.Equal(t, domain.DifficultyBeginner, InferDifficulty(ParseQuery("")))
	require.Equal(t, domain.DifficultyAdvanced, InferDifficulty(ParseQuery("expert.")))
	require.Equal(t, domain.DifficultyAdvanced, InferDifficulty(ParseQuery("advanced-level session")))
	require.Equal(t, domain.DifficultyIntermediate, InferDifficulty(ParseQuery("intermediate!")))
}

func TestBuildFallbackReadsPunctuatedLevel(t *testing.T) {
	videos := []domain.Video{
		{ID: "b", Title: "Easy Start", Difficulty: domain.DifficultyBeginner},
		{ID: "a", Title: "Hard Finish", Difficulty: domain.DifficultyAdvanced},
	}

	plan := New(Options{}).Build(videos, "expert, please")
	require.Equal(t, domain.StrategyDifficulty, plan.Strategy)
	require.Len(t, plan.MatchedVideos, 1)
	require.Equal(t, "a", plan.MatchedVideos[0].ID)
	require.Equal(t, domain.DifficultyAdvanced, plan.Difficulty)
}

func TestAudioNotesShape(t *testing.T) {
	notes := AudioNotes(3, domain.DifficultyIntermediate, "fat loss", "Fat burning HIIT")
	require.Len(t, notes, 4)
	require.Contains(t, notes[0], "intermediate fat loss")
	require.Contains(t, notes[0], `"Fat burning HIIT"`)
	require.True(t, strings.HasPrefix(notes[3], "Outstanding work!"))

	notes = AudioNotes(8, domain.DifficultyBeginner, DefaultGoal, "")
	require.Len(t, notes, 9)
	require.NotContains(t, notes[0], `""`)
	require.Equal(t, notes[1], notes[6])

	require.Empty(t, AudioNotes(0, domain.DifficultyBeginner, DefaultGoal, "x"))
}

func TestGenerateHonorsContextDuringDelay(t *testing.T) {
	p := New(Options{Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := p.Generate(ctx, fixtureCatalog(), "yoga")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, plan)
}

func TestGenerateWithoutDelay(t *testing.T) {
	plan, err := New(Options{}).Generate(context.Background(), fixtureCatalog(), "yoga")
	require.NoError(t, err)
	require.Equal(t, "yoga", plan.MatchedVideos[0].ID)
	require.Equal(t, "flexibility", plan.Goal)
}

func TestNewFillsDefaultOptions(t *testing.T) {
	opts := New(Options{MaxResults: -1, Delay: -time.Second}).Options()
	require.Equal(t, DefaultMaxResults, opts.MaxResults)
	require.Equal(t, DefaultFallbackResults, opts.FallbackResults)
	require.Zero(t, opts.Delay)
	require.Equal(t, DefaultWeights(), opts.Weights)

	custom := Weights{Title: 1}
	require.Equal(t, custom, New(Options{Weights: custom, MaxResults: 2}).Options().Weights)
}
