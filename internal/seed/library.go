// Package seed holds the sample video library loaded into an empty catalog.
package seed

import (
	"time"

	"alcyxob/clipclass/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// Library returns a fresh copy of the sample videos, in catalog order.
func Library() []domain.Video {
	return []domain.Video{
		{
			ID:           "1",
			Title:        "Full Body HIIT Workout - Beginner Friendly",
			SourceURL:    "https://youtube.com/watch?v=dQw4w9WgXcQ",
			ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			Category:     "HIIT",
			Difficulty:   domain.DifficultyBeginner,
			MachineType:  "bodyweight",
			Duration:     20,
			Description:  "A complete full body HIIT workout perfect for beginners",
			Tags:         []string{"hiit", "full body", "fat burn", "no equipment"},
			BodyParts:    []string{"full body", "legs", "core"},
			Goals:        []string{"fat loss", "conditioning"},
			Intensity:    "high",
			CreatedAt:    day(15),
		},
		{
			ID:           "2",
			Title:        "Advanced Strength Training",
			SourceURL:    "https://youtube.com/watch?v=strength456",
			ThumbnailURL: "https://img.youtube.com/vi/strength456/maxresdefault.jpg",
			Category:     "Strength",
			Difficulty:   domain.DifficultyAdvanced,
			MachineType:  "dumbbells",
			Duration:     45,
			Description:  "Intensive strength training for experienced athletes",
			Tags:         []string{"strength", "muscle", "dumbbells", "hypertrophy"},
			BodyParts:    []string{"chest", "back", "arms", "shoulders"},
			Goals:        []string{"muscle building", "strength"},
			Intensity:    "very high",
			CreatedAt:    day(14),
		},
		{
			ID:           "3",
			Title:        "Relaxing Yoga Flow for Flexibility",
			SourceURL:    "https://youtube.com/watch?v=yoga123",
			ThumbnailURL: "https://img.youtube.com/vi/yoga123/maxresdefault.jpg",
			Category:     "Yoga",
			Difficulty:   domain.DifficultyBeginner,
			MachineType:  "bodyweight",
			Duration:     25,
			Description:  "Gentle yoga flow to improve flexibility and reduce stress",
			Tags:         []string{"yoga", "stretch", "relax", "mobility"},
			BodyParts:    []string{"hips", "back", "hamstrings"},
			Goals:        []string{"flexibility", "recovery"},
			Intensity:    "low",
			CreatedAt:    day(12),
		},
		{
			ID:           "4",
			Title:        "Treadmill Cardio Blast",
			SourceURL:    "https://youtube.com/watch?v=cardio789",
			ThumbnailURL: "https://img.youtube.com/vi/cardio789/maxresdefault.jpg",
			Category:     "Cardio",
			Difficulty:   domain.DifficultyIntermediate,
			MachineType:  "treadmill",
			Duration:     30,
			Description:  "High energy cardio workout on the treadmill",
			Tags:         []string{"cardio", "running", "endurance"},
			BodyParts:    []string{"legs", "heart"},
			Goals:        []string{"cardiovascular health", "fat loss"},
			Intensity:    "high",
			CreatedAt:    day(13),
		},
		{
			ID:           "5",
			Title:        "Barbell Power Training",
			SourceURL:    "https://youtube.com/watch?v=barbell101",
			ThumbnailURL: "https://img.youtube.com/vi/barbell101/maxresdefault.jpg",
			Category:     "Strength",
			Difficulty:   domain.DifficultyAdvanced,
			MachineType:  "barbell",
			Duration:     50,
			Description:  "Power training with barbell for serious lifters",
			Tags:         []string{"power", "barbell", "strength", "lifting"},
			BodyParts:    []string{"legs", "back", "glutes"},
			Goals:        []string{"strength", "muscle building"},
			Intensity:    "very high",
			CreatedAt:    day(10),
		},
		{
			ID:           "6",
			Title:        "Pilates Fundamentals - Full Body",
			SourceURL:    "https://youtube.com/watch?v=pilates123",
			ThumbnailURL: "https://img.youtube.com/vi/pilates123/maxresdefault.jpg",
			Category:     "Pilates",
			Difficulty:   domain.DifficultyBeginner,
			MachineType:  "bodyweight",
			Duration:     28,
			Description:  "Introduction to Pilates with full body exercises",
			Tags:         []string{"pilates", "core", "posture"},
			BodyParts:    []string{"core", "full body"},
			Goals:        []string{"flexibility", "toning"},
			Intensity:    "moderate",
			CreatedAt:    day(11),
		},
		{
			ID:           "7",
			Title:        "Cable Machine Full Body Workout",
			SourceURL:    "https://youtube.com/watch?v=cable456",
			ThumbnailURL: "https://img.youtube.com/vi/cable456/maxresdefault.jpg",
			Category:     "Strength",
			Difficulty:   domain.DifficultyIntermediate,
			MachineType:  "cable",
			Duration:     35,
			Description:  "Complete workout using cable machines for all muscle groups",
			Tags:         []string{"cable", "gym", "full body"},
			BodyParts:    []string{"full body", "chest", "back"},
			Goals:        []string{"muscle building", "toning"},
			Intensity:    "moderate",
			CreatedAt:    day(9),
		},
	}
}
