// Package driver runs the typewriter state machine on a timer.
//
// A [Driver] owns one [typing.State] and advances it through a strict serial
// chain: compute the next transition, arm a single timer for its delay, apply
// the transition when the timer fires, repeat. There is never more than one
// pending timer per driver, and once [Driver.Stop] returns no further state
// change can happen.
//
// # Example
//
//	d, err := driver.Start(ctx, []string{"hello", "world"}, typing.DefaultTiming())
//	if err != nil {
//		return err
//	}
//	defer d.Stop()
//	for s := range d.Updates() {
//		fmt.Print("\r" + s.Text)
//	}
package driver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/san-kum/typist/internal/logging"
	"github.com/san-kum/typist/internal/typing"
)

// Option customises a Driver at Start.
type Option func(*Driver)

// WithClock replaces the wall clock, typically with clock.NewMock in tests.
func WithClock(c clock.Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithOnTick registers a callback invoked on the driver goroutine after
// every settled tick, before the next timer is armed.
func WithOnTick(fn func(typing.State)) Option {
	return func(d *Driver) { d.onTick = fn }
}

// WithOnSchedule registers a callback invoked each time a timer is armed,
// with the delay it was armed for.
func WithOnSchedule(fn func(time.Duration)) Option {
	return func(d *Driver) { d.onSchedule = fn }
}

type reconfigureRequest struct {
	phrases typing.Phrases
	timing  typing.Timing
	done    chan struct{}
}

// Driver advances an animation until stopped.
type Driver struct {
	clock      clock.Clock
	logger     *slog.Logger
	onTick     func(typing.State)
	onSchedule func(time.Duration)

	mu      sync.RWMutex
	state   typing.State
	phrases typing.Phrases
	timing  typing.Timing

	updates  chan typing.State
	reconfig chan reconfigureRequest
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Start validates the configuration and begins the tick loop from
// typing.Initial. Validation happens before any timer is armed; on error no
// goroutine is started. Cancelling ctx has the same effect as Stop.
func Start(ctx context.Context, phrases []string, timing typing.Timing, opts ...Option) (*Driver, error) {
	p, err := validate(phrases, timing)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		clock:    clock.New(),
		logger:   logging.Nop(),
		state:    typing.Initial(),
		phrases:  p,
		timing:   timing,
		updates:  make(chan typing.State, 1),
		reconfig: make(chan reconfigureRequest),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.logger.Debug("driver started", "phrases", p.Len(), "timing", timing)
	d.publish(d.state)

	d.wg.Add(1)
	go d.run(ctx)
	return d, nil
}

func validate(phrases []string, timing typing.Timing) (typing.Phrases, error) {
	p, err := typing.NewPhrases(phrases)
	if err != nil {
		return typing.Phrases{}, &ConfigError{Field: "phrases", Err: err}
	}
	if err := timing.Validate(); err != nil {
		return typing.Phrases{}, &ConfigError{Field: "timing", Err: err}
	}
	return p, nil
}

func (d *Driver) run(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.done)
	defer close(d.updates)

	for {
		d.mu.RLock()
		cur, phrases, timing := d.state, d.phrases, d.timing
		d.mu.RUnlock()

		next, delay := typing.Next(cur, phrases, timing)
		timer := d.clock.Timer(delay)
		if d.onSchedule != nil {
			d.onSchedule(delay)
		}

		select {
		case <-d.stop:
			timer.Stop()
			d.logger.Debug("driver stopped", "phrase", cur.PhraseIndex, "chars", cur.CharCount)
			return
		case <-ctx.Done():
			timer.Stop()
			d.logger.Debug("driver context done", "error", ctx.Err())
			return
		case req := <-d.reconfig:
			timer.Stop()
			d.apply(req)
			close(req.done)
		case <-timer.C:
			if d.stopping(ctx) {
				return
			}
			d.mu.Lock()
			d.state = next
			d.mu.Unlock()
			d.publish(next)
			if d.onTick != nil {
				d.onTick(next)
			}
		}
	}
}

// stopping reports whether a stop raced with a timer that already fired.
// Stop wins so nothing is applied after it was requested.
func (d *Driver) stopping(ctx context.Context) bool {
	select {
	case <-d.stop:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (d *Driver) apply(req reconfigureRequest) {
	d.mu.Lock()
	changed := !req.phrases.Equal(d.phrases)
	d.phrases = req.phrases
	d.timing = req.timing
	if changed {
		d.state = typing.Initial()
	}
	s := d.state
	d.mu.Unlock()

	d.logger.Debug("driver reconfigured", "phrases_changed", changed, "timing", req.timing)
	d.publish(s)
}

// publish hands s to Updates, replacing any value the reader has not
// collected yet. Only the driver goroutine and Start call it.
func (d *Driver) publish(s typing.State) {
	select {
	case <-d.updates:
	default:
	}
	select {
	case d.updates <- s:
	default:
	}
}

// Reconfigure swaps phrases and timing. The pending timer is cancelled and
// the schedule restarts under the new configuration. Progress through the
// current phrase is kept when the phrase list is unchanged, otherwise the
// animation starts over from the first phrase.
func (d *Driver) Reconfigure(phrases []string, timing typing.Timing) error {
	p, err := validate(phrases, timing)
	if err != nil {
		return err
	}
	req := reconfigureRequest{phrases: p, timing: timing, done: make(chan struct{})}
	select {
	case d.reconfig <- req:
		<-req.done
		return nil
	case <-d.done:
		return ErrStopped
	}
}

// Stop cancels the pending timer and waits for the loop to exit. It is safe
// to call any number of times.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
	d.wg.Wait()
}

// Running reports whether the tick loop is still active.
func (d *Driver) Running() bool {
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// Done is closed once the tick loop has exited.
func (d *Driver) Done() <-chan struct{} { return d.done }

// Updates delivers the latest settled state. Intermediate states are dropped
// if the reader falls behind. The channel is closed when the driver stops.
func (d *Driver) Updates() <-chan typing.State { return d.updates }

// Snapshot returns the last settled state.
func (d *Driver) Snapshot() typing.State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Text returns the currently displayed text.
func (d *Driver) Text() string { return d.Snapshot().Text }

// Timing returns the active timing configuration.
func (d *Driver) Timing() typing.Timing {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.timing
}
