package planner

import (
	"fmt"

	"alcyxob/clipclass/internal/domain"
)

var transitionNotes = []string{
	"Great start! Remember to maintain proper breathing throughout each exercise. Now let's move to our next movement.",
	"Excellent work so far! You're building strength and endurance. Time to challenge yourself with the next exercise.",
	"Keep that momentum going! Focus on quality over quantity. Let's transition to our next training segment.",
	"Fantastic effort! You're really pushing your limits today. Ready for the next part of your workout?",
	"Amazing progress! Remember to listen to your body and maintain good form. Here comes another great exercise.",
}

// AudioNotes builds the narration for a plan of n videos: an intro, n-1
// transitions and a closing note. An empty plan gets no narration.
func AudioNotes(n int, difficulty domain.Difficulty, goal, query string) []string {
	if n <= 0 {
		return []string{}
	}
	notes := make([]string, 0, n+1)
	if query != "" {
		notes = append(notes, fmt.Sprintf("Welcome to your personalized %s %s session for %q! Let's begin with proper form and focus.", difficulty, goal, query))
	} else {
		notes = append(notes, fmt.Sprintf("Welcome to your personalized %s %s session! Let's begin with proper form and focus.", difficulty, goal))
	}
	for i := 0; i < n-1; i++ {
		notes = append(notes, transitionNotes[i%len(transitionNotes)])
	}
	notes = append(notes, fmt.Sprintf("Outstanding work! You've completed your %s %s session. Take a few minutes to cool down and stretch.", difficulty, goal))
	return notes
}
