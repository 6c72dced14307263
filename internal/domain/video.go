// internal/domain/video.go
package domain

import (
	"strings"
	"time"
)

// Difficulty is the closed set of levels a video can be tagged with.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the valid levels in ascending order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Video represents a single workout video in the catalog.
// The video itself is hosted externally (YouTube); we only keep metadata.
type Video struct {
	ID           string     `bson:"id" json:"id"`
	Title        string     `bson:"title" json:"title"`
	SourceURL    string     `bson:"sourceUrl" json:"sourceUrl"`                           // Watch/short/embed link or bare video ID
	ThumbnailURL string     `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"` // Derived from SourceURL when not supplied
	Category     string     `bson:"category" json:"category"`                             // Open label, e.g. "HIIT", "Strength", "Yoga"
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	MachineType  string     `bson:"machineType,omitempty" json:"machineType,omitempty"` // Equipment, e.g. "dumbbells", "bodyweight"
	Duration     int        `bson:"duration" json:"duration"`                           // Minutes
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Tags         []string   `bson:"tags,omitempty" json:"tags,omitempty"`

	// Optional fields that widen the match surface of the planner.
	BodyParts []string `bson:"bodyParts,omitempty" json:"bodyParts,omitempty"`
	Goals     []string `bson:"goals,omitempty" json:"goals,omitempty"`
	Intensity string   `bson:"intensity,omitempty" json:"intensity,omitempty"` // "low", "moderate", "high", "very high"

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Clone returns a deep copy so callers can't mutate catalog state through slices.
func (v Video) Clone() Video {
	v.Tags = cloneStrings(v.Tags)
	v.BodyParts = cloneStrings(v.BodyParts)
	v.Goals = cloneStrings(v.Goals)
	return v
}

// VideoInput carries the caller-supplied fields for a new video.
// ID and CreatedAt are always assigned by the store.
type VideoInput struct {
	Title        string     `json:"title" validate:"required"`
	SourceURL    string     `json:"sourceUrl" validate:"required"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Category     string     `json:"category" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	MachineType  string     `json:"machineType"`
	Duration     int        `json:"duration" validate:"required,gt=0"`
	Description  string     `json:"description"`
	Tags         []string   `json:"tags"`
	BodyParts    []string   `json:"bodyParts"`
	Goals        []string   `json:"goals"`
	Intensity    string     `json:"intensity"`
}

// Normalize trims text fields and drops empty list entries.
func (in *VideoInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.SourceURL = strings.TrimSpace(in.SourceURL)
	in.ThumbnailURL = strings.TrimSpace(in.ThumbnailURL)
	in.Category = strings.TrimSpace(in.Category)
	in.Difficulty = Difficulty(strings.ToLower(strings.TrimSpace(string(in.Difficulty))))
	in.MachineType = strings.TrimSpace(in.MachineType)
	in.Description = strings.TrimSpace(in.Description)
	in.Tags = CleanList(in.Tags)
	in.BodyParts = CleanList(in.BodyParts)
	in.Goals = CleanList(in.Goals)
	in.Intensity = strings.ToLower(strings.TrimSpace(in.Intensity))
}

// VideoPatch holds a partial update. Nil fields are left untouched.
type VideoPatch struct {
	Title        *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	SourceURL    *string     `json:"sourceUrl,omitempty" validate:"omitempty,min=1"`
	ThumbnailURL *string     `json:"thumbnailUrl,omitempty"`
	Category     *string     `json:"category,omitempty" validate:"omitempty,min=1"`
	Difficulty   *Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	MachineType  *string     `json:"machineType,omitempty"`
	Duration     *int        `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Description  *string     `json:"description,omitempty"`
	Tags         *[]string   `json:"tags,omitempty"`
	BodyParts    *[]string   `json:"bodyParts,omitempty"`
	Goals        *[]string   `json:"goals,omitempty"`
	Intensity    *string     `json:"intensity,omitempty"`
}

// Apply merges the supplied fields into v. ID and CreatedAt never change.
func (p VideoPatch) Apply(v *Video) {
	if p.Title != nil {
		v.Title = strings.TrimSpace(*p.Title)
	}
	if p.SourceURL != nil {
		v.SourceURL = strings.TrimSpace(*p.SourceURL)
	}
	if p.ThumbnailURL != nil {
		v.ThumbnailURL = strings.TrimSpace(*p.ThumbnailURL)
	}
	if p.Category != nil {
		v.Category = strings.TrimSpace(*p.Category)
	}
	if p.Difficulty != nil {
		v.Difficulty = Difficulty(strings.ToLower(strings.TrimSpace(string(*p.Difficulty))))
	}
	if p.MachineType != nil {
		v.MachineType = strings.TrimSpace(*p.MachineType)
	}
	if p.Duration != nil {
		v.Duration = *p.Duration
	}
	if p.Description != nil {
		v.Description = strings.TrimSpace(*p.Description)
	}
	if p.Tags != nil {
		v.Tags = CleanList(*p.Tags)
	}
	if p.BodyParts != nil {
		v.BodyParts = CleanList(*p.BodyParts)
	}
	if p.Goals != nil {
		v.Goals = CleanList(*p.Goals)
	}
	if p.Intensity != nil {
		v.Intensity = strings.ToLower(strings.TrimSpace(*p.Intensity))
	}
}

// SearchFilter is the plain (non-scored) browse filter.
// Empty or "all" Category/Difficulty mean "any".
type SearchFilter struct {
	Query      string
	Category   string
	Difficulty string
}

// CleanList trims every entry and drops the empty ones, keeping order.
func CleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SplitTags turns a comma separated string ("a, b,,c") into a clean list.
func SplitTags(raw string) []string {
	return CleanList(strings.Split(raw, ","))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
