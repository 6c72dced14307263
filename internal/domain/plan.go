// internal/domain/plan.go
package domain

// PlanStrategy records which branch of the selection cascade produced a plan.
type PlanStrategy string

const (
	StrategyScored     PlanStrategy = "scored"     // At least one video scored above zero
	StrategyDifficulty PlanStrategy = "difficulty" // Fell back to the difficulty inferred from the query
	StrategyCatalog    PlanStrategy = "catalog"    // Fell back to the head of the catalog
	StrategyEmpty      PlanStrategy = "empty"      // Catalog itself is empty
)

// WorkoutPlan is the query-time projection returned by the planner.
// It is never stored; every query regenerates it.
type WorkoutPlan struct {
	Query         string       `json:"query"`
	MatchedVideos []Video      `json:"matchedVideos"`
	Scores        []int        `json:"scores"` // Aligned with MatchedVideos; zero for fallback picks
	Category      string       `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
	Goal          string       `json:"goal"`
	AudioNotes    []string     `json:"audioNotes"`
	TotalDuration int          `json:"totalDuration"` // Minutes
	Strategy      PlanStrategy `json:"strategy"`
}

// ClassSummary is a hand-picked sequence of videos, as built in the browse view.
type ClassSummary struct {
	Videos        []Video  `json:"videos"`
	TotalDuration int      `json:"totalDuration"`
	MissingIDs    []string `json:"missingIds,omitempty"`
}

// CatalogStats backs the admin dashboard counters.
type CatalogStats struct {
	TotalVideos  int                `json:"totalVideos"`
	ByDifficulty map[Difficulty]int `json:"byDifficulty"`
	Categories   int                `json:"categories"`
	TotalMinutes int                `json:"totalMinutes"`
}
