package typing

import (
	"fmt"
	"time"
)

// Mode is the direction the animation is moving in.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is a settled animation frame. Text always equals the first
// CharCount clusters of the phrase at PhraseIndex.
type State struct {
	PhraseIndex int
	CharCount   int
	Mode        Mode
	Text        string
}

// Initial returns the state every animation starts from.
func Initial() State {
	return State{Mode: Typing}
}

// Timing holds the delays that precede each kind of transition.
type Timing struct {
	TypingInterval     time.Duration
	DeletingInterval   time.Duration
	PauseAfterComplete time.Duration
	PauseAfterEmpty    time.Duration
}

const (
	DefaultTypingInterval     = 100 * time.Millisecond
	DefaultDeletingInterval   = 50 * time.Millisecond
	DefaultPauseAfterComplete = 2000 * time.Millisecond
	DefaultPauseAfterEmpty    = 500 * time.Millisecond
)

func DefaultTiming() Timing {
	return Timing{
		TypingInterval:     DefaultTypingInterval,
		DeletingInterval:   DefaultDeletingInterval,
		PauseAfterComplete: DefaultPauseAfterComplete,
		PauseAfterEmpty:    DefaultPauseAfterEmpty,
	}
}

// Validate rejects negative durations. Zero is allowed.
func (t Timing) Validate() error {
	fields := []struct {
		name string
		d    time.Duration
	}{
		{"typing interval", t.TypingInterval},
		{"deleting interval", t.DeletingInterval},
		{"pause after complete", t.PauseAfterComplete},
		{"pause after empty", t.PauseAfterEmpty},
	}
	for _, f := range fields {
		if f.d < 0 {
			return fmt.Errorf("%s %v: %w", f.name, f.d, ErrNegativeDuration)
		}
	}
	return nil
}

// Next computes the transition out of s and the delay to wait before
// applying it. Next never fails: the phrase index wraps and the character
// count is clamped, so any State is a valid input as long as p is non-empty.
func Next(s State, p Phrases, t Timing) (State, time.Duration) {
	if p.Len() == 0 {
		return s, t.PauseAfterEmpty
	}

	idx := p.Index(s.PhraseIndex)
	length := p.Length(idx)
	n := s.CharCount
	if n < 0 {
		n = 0
	} else if n > length {
		n = length
	}

	switch s.Mode {
	case Deleting:
		if n > 0 {
			n--
			return State{PhraseIndex: idx, CharCount: n, Mode: Deleting, Text: p.Prefix(idx, n)}, t.DeletingInterval
		}
		return State{PhraseIndex: p.Index(idx + 1), CharCount: 0, Mode: Typing}, t.PauseAfterEmpty
	default:
		if n < length {
			n++
			return State{PhraseIndex: idx, CharCount: n, Mode: Typing, Text: p.Prefix(idx, n)}, t.TypingInterval
		}
		return State{PhraseIndex: idx, CharCount: n, Mode: Deleting, Text: p.Prefix(idx, n)}, t.PauseAfterComplete
	}
}

// Step is one transition produced by Next.
type Step struct {
	State State
	Delay time.Duration
}

// Sequence returns the first n transitions starting from Initial.
func Sequence(p Phrases, t Timing, n int) []Step {
	if n <= 0 {
		return nil
	}
	steps := make([]Step, 0, n)
	s := Initial()
	for i := 0; i < n; i++ {
		var d time.Duration
		s, d = Next(s, p, t)
		steps = append(steps, Step{State: s, Delay: d})
	}
	return steps
}

// CycleLength is the number of transitions needed to type and delete every
// phrase once and land back on the first one.
func CycleLength(p Phrases) int {
	total := 0
	for i := 0; i < p.Len(); i++ {
		total += 2*p.Length(i) + 2
	}
	return total
}
