package narration

import (
	"context"
	"strings"
	"time"

	"alcyxob/clipclass/internal/logger"
)

const defaultWordsPerMinute = 160

// LogSynthesizer stands in for a real TTS engine: it logs the utterance and
// holds for roughly the time it would take to read it aloud.
type LogSynthesizer struct {
	wordsPerMinute int
	log            *logger.Logger
}

// NewLogSynthesizer creates a LogSynthesizer. A non-positive rate uses 160 wpm.
func NewLogSynthesizer(wordsPerMinute int, log *logger.Logger) *LogSynthesizer {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LogSynthesizer{wordsPerMinute: wordsPerMinute, log: log}
}

// SpeakingTime estimates how long text takes to read at the configured rate.
func (s *LogSynthesizer) SpeakingTime(text string) time.Duration {
	words := len(strings.Fields(text))
	return time.Duration(words) * time.Minute / time.Duration(s.wordsPerMinute)
}

func (s *LogSynthesizer) Speak(ctx context.Context, text string) error {
	d := s.SpeakingTime(text)
	s.log.Info("speaking", "text", text, "duration", d)

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
