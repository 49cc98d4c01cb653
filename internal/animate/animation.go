// Package animate drives time-based interpolations.
//
// An Animation does not own a timer. The host schedules ticks every Delay()
// (Bubble Tea uses tea.Tick) and feeds the tick time to Step. Progress is
// computed from elapsed wall time, so late or missed ticks self-correct.
package animate

import (
	"time"

	"rollpanel/internal/motion"
)

// DefaultDelay is the tick interval used when Options.Delay is zero.
const DefaultDelay = 10 * time.Millisecond

// Options configures an Animation.
type Options struct {
	Delay      time.Duration // tick interval; DefaultDelay if zero
	Duration   time.Duration // total length; <= 0 completes on the first step
	Easing     motion.Func   // Linear if nil
	OnStep     func(eased float64)
	OnComplete func()
}

// Animation is a single run of an interpolation. It always runs to
// completion; there is no cancel.
type Animation struct {
	opts  Options
	start time.Time
	done  bool
	steps int
}

// Start records the start time from clock and returns the running animation.
func Start(clock Clock, opts Options) *Animation {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Easing == nil {
		opts.Easing = motion.Linear
	}
	return &Animation{
		opts:  opts,
		start: clock.Now(),
	}
}

// Delay returns the tick interval the host should use.
func (a *Animation) Delay() time.Duration {
	return a.opts.Delay
}

// Done reports whether the completion callback has run.
func (a *Animation) Done() bool {
	return a.done
}

// Steps returns how many ticks have been processed.
func (a *Animation) Steps() int {
	return a.steps
}

// Progress returns raw (uneased) progress at now, clamped to [0,1].
func (a *Animation) Progress(now time.Time) float64 {
	if a.opts.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.opts.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Step processes one tick at now: it calls OnStep with the eased progress and,
// once raw progress reaches 1, calls OnComplete exactly once. Returns true
// when the animation has finished. Steps after completion do nothing.
func (a *Animation) Step(now time.Time) bool {
	if a.done {
		return true
	}
	a.steps++
	raw := a.Progress(now)
	if a.opts.OnStep != nil {
		a.opts.OnStep(a.opts.Easing(raw))
	}
	if raw < 1 {
		return false
	}
	a.done = true
	if a.opts.OnComplete != nil {
		a.opts.OnComplete()
	}
	return true
}
