// Package narration plays plan audio notes through a text-to-speech backend,
// one utterance at a time.
package narration

import (
	"context"
	"errors"
	"strings"
	"sync"

	"alcyxob/clipclass/internal/logger"
)

// ErrEmptyUtterance is returned by Speak for blank text.
var ErrEmptyUtterance = errors.New("nothing to speak")

// State of the player.
type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
)

// Synthesizer turns text into speech. Speak blocks until the utterance ends
// and must return promptly once ctx is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Status is a point-in-time view of the player.
type Status struct {
	State     State  `json:"state"`
	Text      string `json:"text,omitempty"`
	Utterance uint64 `json:"utterance"` // Bumped by every Speak and Cancel
}

// Player is an Idle/Speaking state machine around a Synthesizer. Starting
// a new utterance while speaking cancels the current one first.
type Player struct {
	synth Synthesizer
	log   *logger.Logger

	mu         sync.Mutex
	state      State
	text       string
	generation uint64
	cancel     context.CancelFunc
}

// NewPlayer creates an idle player.
func NewPlayer(synth Synthesizer, log *logger.Logger) *Player {
	if log == nil {
		log = logger.Nop()
	}
	return &Player{
		synth: synth,
		log:   log.With("component", "narration"),
		state: StateIdle,
	}
}

// Speak starts text and returns a channel closed when that utterance has
// finished or been cancelled.
func (p *Player) Speak(text string) (<-chan struct{}, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyUtterance
	}

	p.mu.Lock()
	p.stopLocked()
	p.generation++
	gen := p.generation
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.state = StateSpeaking
	p.text = text
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := p.synth.Speak(ctx, text)
		if err != nil && !errors.Is(err, context.Canceled) {
			p.log.Warn("utterance failed", "utterance", gen, "error", err)
		}
		p.finish(gen)
	}()
	return done, nil
}

// Cancel stops the current utterance. It is a no-op when idle.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateSpeaking {
		p.log.Debug("utterance cancelled", "utterance", p.generation)
	}
	p.stopLocked()
}

// Speaking reports whether an utterance is in progress.
func (p *Player) Speaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateSpeaking
}

// Current returns the text being spoken, or "" when idle.
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{State: p.state, Text: p.text, Utterance: p.generation}
}

// finish moves Speaking to Idle, unless gen has already been superseded.
func (p *Player) finish(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation || p.state != StateSpeaking {
		return
	}
	p.cancel()
	p.cancel = nil
	p.state = StateIdle
	p.text = ""
}

// stopLocked cancels any running utterance and bumps the generation so its
// completion is ignored. Caller holds p.mu.
func (p *Player) stopLocked() {
	if p.state != StateSpeaking {
		return
	}
	p.cancel()
	p.cancel = nil
	p.generation++
	p.state = StateIdle
	p.text = ""
}
