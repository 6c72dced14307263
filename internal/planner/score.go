package planner

import (
	"strings"
	"unicode/utf8"

	"alcyxob/clipclass/internal/domain"
)

const minTokenLength = 3

var (
	highIntensityWords = []string{"intense", "maximum", "extreme"}
	lowIntensityWords  = []string{"gentle", "easy", "relaxing"}
)

// Query is a normalized search phrase.
type Query struct {
	Raw    string   // As typed, trimmed
	Text   string   // Lowercased Raw
	Tokens []string // Whitespace split of Text, short tokens dropped
}

// ParseQuery lowercases the phrase and keeps tokens of at least three runes.
func ParseQuery(raw string) Query {
	raw = strings.TrimSpace(raw)
	text := strings.ToLower(raw)
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return Query{Raw: raw, Text: text, Tokens: tokens}
}

// HasToken reports whether any token equals word exactly.
func (q Query) HasToken(word string) bool {
	for _, t := range q.Tokens {
		if t == word {
			return true
		}
	}
	return false
}

// Score sums every signal v produces for q. Zero means no match.
func Score(v domain.Video, q Query, w Weights) int {
	score := 0

	if q.Text != "" {
		if strings.Contains(strings.ToLower(v.Title), q.Text) {
			score += w.Title
		}
		if cat := strings.ToLower(strings.TrimSpace(v.Category)); cat != "" {
			if strings.Contains(q.Text, cat) || strings.Contains(cat, q.Text) {
				score += w.Category
			}
		}
	}

	if q.HasToken(strings.ToLower(string(v.Difficulty))) {
		score += w.Difficulty
	}

	if machine := strings.ToLower(strings.TrimSpace(v.MachineType)); machine != "" && anyTokenOverlaps(q.Tokens, machine) {
		score += w.Equipment
	}

	score += w.Tag * countOverlaps(q.Tokens, v.Tags)
	score += w.Goal * countOverlaps(q.Tokens, v.Goals)
	score += w.BodyPart * countOverlaps(q.Tokens, v.BodyParts)

	if desc := strings.ToLower(v.Description); desc != "" {
		for _, t := range q.Tokens {
			if strings.Contains(desc, t) {
				score += w.Description
			}
		}
	}

	intensity := strings.ToLower(strings.TrimSpace(v.Intensity))
	switch {
	case containsAny(q.Text, highIntensityWords) && (intensity == "high" || intensity == "very high"):
		score += w.Intensity
	case containsAny(q.Text, lowIntensityWords) && intensity == "low":
		score += w.Intensity
	}

	return score
}

// countOverlaps counts labels that overlap at least one token.
func countOverlaps(tokens, labels []string) int {
	n := 0
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label != "" && anyTokenOverlaps(tokens, label) {
			n++
		}
	}
	return n
}

// anyTokenOverlaps reports whether a token contains label or label contains a token.
func anyTokenOverlaps(tokens []string, label string) bool {
	for _, t := range tokens {
		if strings.Contains(label, t) || strings.Contains(t, label) {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
