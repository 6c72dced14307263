package planner

// Weights is the additive score table. Each field is the number of points a
// single signal contributes; tuning the heuristic is a config change.
type Weights struct {
	Title       int `mapstructure:"title" json:"title"`             // Full query is a substring of the title
	Category    int `mapstructure:"category" json:"category"`       // Query and category contain one another
	Difficulty  int `mapstructure:"difficulty" json:"difficulty"`   // A token equals the difficulty label
	Equipment   int `mapstructure:"equipment" json:"equipment"`     // A token and the machine type contain one another
	Tag         int `mapstructure:"tag" json:"tag"`                 // Per matching tag
	Goal        int `mapstructure:"goal" json:"goal"`               // Per matching goal label
	BodyPart    int `mapstructure:"body_part" json:"bodyPart"`      // Per matching body part
	Description int `mapstructure:"description" json:"description"` // Per token found in the description
	Intensity   int `mapstructure:"intensity" json:"intensity"`     // Query intensity words agree with the video
}

// DefaultWeights returns the stock tuning.
func DefaultWeights() Weights {
	return Weights{
		Title:       100,
		Category:    80,
		Difficulty:  60,
		Equipment:   50,
		Tag:         40,
		Goal:        30,
		BodyPart:    25,
		Description: 15,
		Intensity:   40,
	}
}

// IsZero reports whether no weight has been set at all.
func (w Weights) IsZero() bool {
	return w == Weights{}
}
