// Package roller implements the three-panel rolling transition.
//
// A Roller owns three reusable panels labeled prev, center and next. Move
// writes new content into the panel on the flow side, slides it in while the
// center slides out, then relabels the pair so the new content is center.
// Moves requested while a transition is running are queued and replayed in
// order, one at a time.
//
// A Roller is not safe for concurrent use. It is meant to live inside a
// single-threaded update loop (a Bubble Tea model) which feeds it ticks via
// Tick.
package roller

import (
	"io"
	"log"
	"math"
	"time"

	"rollpanel/internal/animate"
	"rollpanel/internal/events"
	"rollpanel/internal/motion"

	"github.com/google/uuid"
)

// Status is the state machine state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
)

// Notification names fired on the roller's Emitter.
const (
	EventBeforeMove = "beforeMove" // payload: MoveEvent
	EventAfterMove  = "afterMove"  // payload: nil
)

// MoveRequest asks the roller to show Data. Zero Duration and empty Flow
// mean "use the roller's default". Flows other than prev are treated as next.
type MoveRequest struct {
	ID       string
	Data     string
	Duration time.Duration
	Flow     Flow
}

// MoveEvent is the beforeMove payload.
type MoveEvent struct {
	ID   string
	Data string
	Flow Flow
}

// Option customizes a Roller at construction.
type Option func(*Roller)

// WithEmitter routes notifications through e instead of a private bus.
func WithEmitter(e events.Emitter) Option {
	return func(r *Roller) { r.emitter = e }
}

// WithClock sets the clock animations read their start time from.
func WithClock(c animate.Clock) Option {
	return func(r *Roller) { r.clock = c }
}

// WithObserver registers an Observer for transition lifecycle callbacks.
func WithObserver(o Observer) Option {
	return func(r *Roller) { r.observer = o }
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Roller) { r.logger = l }
}

// Roller is the orchestrator.
type Roller struct {
	cfg      Config
	width    int
	height   int
	distance int
	resize   *[2]int // size change deferred until the running move settles

	status     Status
	flow       Flow
	motion     motion.Func
	motionName string

	panels  PanelSet
	queue   []MoveRequest
	current MoveRequest
	curFlow Flow
	targets [2]*Panel
	anim    *animate.Animation

	emitter  events.Emitter
	clock    animate.Clock
	observer Observer
	logger   *log.Logger
}

// New builds a roller showing initial in the center panel. Configuration
// problems are reported as errors wrapping ErrInvalidConfig.
func New(cfg Config, initial string, opts ...Option) (*Roller, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Roller{
		cfg:    cfg,
		status: StatusIdle,
		flow:   cfg.Flow,
		panels: newPanelSet(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	if r.emitter == nil {
		r.emitter = events.New(r.logger)
	}
	if r.clock == nil {
		r.clock = animate.SystemClock
	}
	if r.observer == nil {
		r.observer = NopObserver{}
	}
	r.ChangeMotion(cfg.Motion)
	r.applySize(cfg.Width, cfg.Height)

	center := r.panels.Get(RoleCenter)
	center.Content = initial
	r.panels.attach(RoleCenter, 0)
	return r, nil
}

// Move starts a transition to req.Data, or queues req if one is running.
func (r *Roller) Move(req MoveRequest) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Flow = req.Flow.normalize()
	if r.status != StatusIdle {
		r.queue = append(r.queue, req)
		r.observer.MoveQueued(req, len(r.queue))
		return
	}
	r.status = StatusRunning

	flow := req.Flow
	if flow == "" {
		flow = r.flow
	}
	r.current = req
	r.curFlow = flow

	r.emitter.Fire(EventBeforeMove, MoveEvent{ID: req.ID, Data: req.Data, Flow: flow})
	r.observer.MoveStarted(req, flow)

	incoming := roleOf(flow)
	r.panels.Get(incoming).Content = req.Data
	r.panels.attach(incoming, mountOffset(flow, r.distance))

	if flow == FlowPrev {
		r.targets = [2]*Panel{r.panels.Get(RolePrev), r.panels.Get(RoleCenter)}
	} else {
		r.targets = [2]*Panel{r.panels.Get(RoleCenter), r.panels.Get(RoleNext)}
	}

	if r.motion == nil {
		dest := computeOffsets(flow, r.distance)
		for i, p := range r.targets {
			p.Offset = dest[i]
		}
		r.fix()
		return
	}
	r.animate(req, flow)
}

func (r *Roller) animate(req MoveRequest, flow Flow) {
	duration := req.Duration
	if duration <= 0 {
		duration = r.cfg.Duration
	}
	targets := r.targets
	start := [2]int{targets[0].Offset, targets[1].Offset}
	distance := float64(r.distance)

	r.anim = animate.Start(r.clock, animate.Options{
		Delay:    r.cfg.Delay,
		Duration: duration,
		Easing:   r.motion,
		OnStep: func(eased float64) {
			delta := distance * eased
			if flow != FlowPrev {
				delta = -delta
			}
			shift := int(math.Round(delta))
			for i, p := range targets {
				p.Offset = start[i] + shift
			}
		},
		OnComplete: r.fix,
	})
}

// Tick advances the running animation to now. It reports whether an
// animation is still in flight afterwards, which may be a queued move that
// started during this tick.
func (r *Roller) Tick(now time.Time) bool {
	if r.anim == nil {
		return false
	}
	r.anim.Step(now)
	return r.Animating()
}

// Animating reports whether a timed transition is waiting for ticks.
func (r *Roller) Animating() bool {
	return r.anim != nil && !r.anim.Done()
}

// FrameDelay is the tick interval hosts should schedule while Animating.
func (r *Roller) FrameDelay() time.Duration {
	return r.cfg.Delay
}

// fix ends the running transition: relabel, detach the vacated panel, go
// idle, then replay one queued move or announce afterMove.
func (r *Roller) fix() {
	flow := r.curFlow
	r.panels.rotate(flow)
	r.panels.detach(roleOf(flow))
	r.panels.Get(RoleCenter).Offset = 0

	r.anim = nil
	r.targets = [2]*Panel{}
	if r.resize != nil {
		r.applySize(r.resize[0], r.resize[1])
		r.resize = nil
	}
	r.status = StatusIdle

	done := r.current
	r.current = MoveRequest{}
	r.observer.MoveFinished(done, flow)

	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		r.Move(next)
		return
	}
	r.emitter.Fire(EventAfterMove, nil)
}

// ChangeMotion switches the easing used by the next move. Unknown names
// fall back to instant moves; the return value reports whether name was
// recognized.
func (r *Roller) ChangeMotion(name string) bool {
	f, _ := motion.Lookup(name)
	r.motion = f
	if f == nil {
		r.motionName = ""
	} else {
		r.motionName = name
	}
	if !motion.Known(name) {
		r.logger.Printf("roller: unknown motion %q, moves will be instant", name)
		return false
	}
	return true
}

// SetFlow sets the default flow for moves that do not carry one. An empty
// flow keeps the current default; anything other than prev means next.
func (r *Roller) SetFlow(flow Flow) {
	flow = flow.normalize()
	if flow == "" {
		flow = r.flow
	}
	if flow == "" {
		flow = FlowNext
	}
	r.flow = flow
}

// SetSize updates the container size. While a move is running the change
// is held until it settles, so in-flight offsets stay consistent.
func (r *Roller) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.status != StatusIdle {
		r.resize = &[2]int{width, height}
		return
	}
	r.applySize(width, height)
}

func (r *Roller) applySize(width, height int) {
	r.width, r.height = width, height
	size := width
	if r.cfg.Direction == Vertical {
		size = height
	}
	r.distance = UnitDistance(size, r.cfg.Unit, r.cfg.ItemCount)
}

// On subscribes to a notification on the roller's emitter.
func (r *Roller) On(name string, h events.Handler) func() {
	return r.emitter.On(name, h)
}

// Fire publishes a custom notification on the roller's emitter.
func (r *Roller) Fire(name string, payload any) {
	r.emitter.Fire(name, payload)
}

// Status returns idle or running.
func (r *Roller) Status() Status { return r.status }

// Pending returns the number of queued moves.
func (r *Roller) Pending() int { return len(r.queue) }

// Queue returns a copy of the queued moves in replay order.
func (r *Roller) Queue() []MoveRequest {
	out := make([]MoveRequest, len(r.queue))
	copy(out, r.queue)
	return out
}

// Distance is the number of cells one move covers.
func (r *Roller) Distance() int { return r.distance }

// Size returns the container size in cells.
func (r *Roller) Size() (width, height int) { return r.width, r.height }

// Flow returns the default flow.
func (r *Roller) Flow() Flow { return r.flow }

// MotionName returns the active easing name, or "" for instant moves.
func (r *Roller) MotionName() string { return r.motionName }

// Config returns the configuration the roller was built with.
func (r *Roller) Config() Config { return r.cfg }

// Axis returns the offset this roller moves.
func (r *Roller) Axis() Axis { return r.cfg.Axis() }

// Panel returns a copy of the panel labeled role.
func (r *Roller) Panel(role Role) Panel { return *r.panels.Get(role) }

// RoleOf returns the role held by the panel in slot.
func (r *Roller) RoleOf(slot int) Role { return r.panels.RoleOf(slot) }

// Attached returns copies of the mounted panels, bottom-most first.
func (r *Roller) Attached() []Panel { return r.panels.Attached() }

// Center returns the content of the center panel.
func (r *Roller) Center() string { return r.panels.Get(RoleCenter).Content }
