package narration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// gateSynth blocks each utterance until released or cancelled.
type gateSynth struct {
	started chan string
	release chan struct{}
}

func newGateSynth() *gateSynth {
	return &gateSynth{started: make(chan string, 8), release: make(chan struct{})}
}

func (s *gateSynth) Speak(ctx context.Context, text string) error {
	s.started <- text
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.release:
		return nil
	}
}

// stubbornSynth ignores cancellation until the utterance is released, so its
// completion arrives after a newer utterance has started.
type stubbornSynth struct {
	started  chan string
	releases map[string]chan struct{}
}

func (s *stubbornSynth) Speak(ctx context.Context, text string) error {
	s.started <- text
	<-s.releases[text]
	return nil
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("utterance did not finish")
	}
}

func TestSpeakAndFinish(t *testing.T) {
	synth := newGateSynth()
	p := NewPlayer(synth, nil)
	require.False(t, p.Speaking())

	done, err := p.Speak("Welcome to your session")
	require.NoError(t, err)
	require.Equal(t, "Welcome to your session", <-synth.started)
	require.True(t, p.Speaking())
	require.Equal(t, "Welcome to your session", p.Current())

	close(synth.release)
	waitDone(t, done)
	require.False(t, p.Speaking())
	require.Empty(t, p.Current())
	require.Equal(t, StateIdle, p.Status().State)
}

func TestCancelStopsUtterance(t *testing.T) {
	synth := newGateSynth()
	p := NewPlayer(synth, nil)

	done, err := p.Speak("Long intro")
	require.NoError(t, err)
	<-synth.started

	p.Cancel()
	require.False(t, p.Speaking())
	waitDone(t, done)
	require.False(t, p.Speaking())

	// Cancelling while idle is harmless.
	p.Cancel()
	require.False(t, p.Speaking())
}

func TestSpeakWhileSpeakingReplacesUtterance(t *testing.T) {
	synth := newGateSynth()
	p := NewPlayer(synth, nil)

	first, err := p.Speak("first")
	require.NoError(t, err)
	<-synth.started

	second, err := p.Speak("second")
	require.NoError(t, err)
	waitDone(t, first)
	require.Equal(t, "second", <-synth.started)
	require.True(t, p.Speaking())
	require.Equal(t, "second", p.Current())

	close(synth.release)
	waitDone(t, second)
	require.False(t, p.Speaking())
}

func TestStaleCompletionIsIgnored(t *testing.T) {
	synth := &stubbornSynth{
		started: make(chan string, 4),
		releases: map[string]chan struct{}{
			"first":  make(chan struct{}),
			"second": make(chan struct{}),
		},
	}
	p := NewPlayer(synth, nil)

	first, err := p.Speak("first")
	require.NoError(t, err)
	<-synth.started

	second, err := p.Speak("second")
	require.NoError(t, err)
	<-synth.started

	close(synth.releases["first"])
	waitDone(t, first)
	require.True(t, p.Speaking())
	require.Equal(t, "second", p.Current())

	close(synth.releases["second"])
	waitDone(t, second)
	require.False(t, p.Speaking())
}

func TestSpeakRejectsBlankText(t *testing.T) {
	p := NewPlayer(newGateSynth(), nil)
	_, err := p.Speak("   ")
	require.ErrorIs(t, err, ErrEmptyUtterance)
	require.False(t, p.Speaking())
	require.Zero(t, p.Status().Utterance)
}

func TestLogSynthesizerSpeakingTime(t *testing.T) {
	s := NewLogSynthesizer(120, nil)
	require.Equal(t, time.Second, s.SpeakingTime("one two"))
	require.Equal(t, time.Duration(0), s.SpeakingTime(""))

	require.Equal(t, defaultWordsPerMinute, NewLogSynthesizer(0, nil).wordsPerMinute)
}

func TestLogSynthesizerHonorsCancel(t *testing.T) {
	s := NewLogSynthesizer(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Speak(ctx, "this would take minutes"), context.Canceled)
}
