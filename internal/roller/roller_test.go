package roller

import (
	"bytes"
	"log"
	"testing"
	"time"

	"rollpanel/internal/animate"
	"rollpanel/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	log []string
}

func (o *recordingObserver) MoveQueued(req MoveRequest, depth int) {
	o.log = append(o.log, "queued:"+req.Data)
}

func (o *recordingObserver) MoveStarted(req MoveRequest, flow Flow) {
	o.log = append(o.log, "start:"+req.Data+":"+string(flow))
}

func (o *recordingObserver) MoveFinished(req MoveRequest, flow Flow) {
	o.log = append(o.log, "finish:"+req.Data)
}

func newTestRoller(t *testing.T, cfg Config, opts ...Option) (*Roller, *animate.ManualClock) {
	t.Helper()
	clock := animate.NewManualClock(time.Unix(1000, 0))
	r, err := New(cfg, "initial", append([]Option{WithClock(clock)}, opts...)...)
	require.NoError(t, err)
	return r, clock
}

func TestNew_CenterMounted(t *testing.T) {
	r, _ := newTestRoller(t, Config{Width: 300, Height: 150})
	assert.Equal(t, StatusIdle, r.Status())
	assert.Equal(t, 300, r.Distance())
	assert.Equal(t, "initial", r.Center())
	attached := r.Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, 0, attached[0].Offset)
	assert.Equal(t, RoleCenter, r.RoleOf(attached[0].Slot))
	assert.Equal(t, "", r.MotionName())
	assert.Equal(t, FlowNext, r.Flow())
}

func TestNew_Distance(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"horizontal page", Config{Width: 300, Height: 150}, 300},
		{"vertical page", Config{Width: 150, Height: 300, Direction: Vertical}, 300},
		{"horizontal item", Config{Width: 300, Height: 150, Unit: UnitItem, ItemCount: 3}, 100},
		{"vertical item", Config{Width: 150, Height: 300, Direction: Vertical, Unit: UnitItem, ItemCount: 3}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRoller(t, tt.cfg)
			assert.Equal(t, tt.want, r.Distance())
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Width: 10, Height: 10, Motion: "bouncy"}, "")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMove_InstantWithoutMotion(t *testing.T) {
	r, _ := newTestRoller(t, Config{Width: 300, Height: 150})
	var fired []string
	r.On(EventBeforeMove, func(p any) { fired = append(fired, "before:"+p.(MoveEvent).Data) })
	r.On(EventAfterMove, func(p any) {
		assert.Nil(t, p)
		fired = append(fired, "after")
	})
	oldCenter := r.Panel(RoleCenter).Slot
	oldNext := r.Panel(RoleNext).Slot

	r.Move(MoveRequest{Data: "X"})

	assert.Equal(t, StatusIdle, r.Status())
	assert.False(t, r.Animating())
	assert.Equal(t, "X", r.Center())
	assert.Equal(t, oldNext, r.Panel(RoleCenter).Slot)
	assert.Equal(t, oldCenter, r.Panel(RoleNext).Slot)
	assert.Equal(t, []string{"before:X", "after"}, fired)

	vacated := r.Panel(RoleNext)
	assert.False(t, vacated.Attached)
	assert.Equal(t, -300, vacated.Offset)
	assert.Equal(t, 0, r.Panel(RoleCenter).Offset)
	assert.Len(t, r.Attached(), 1)
}

func TestMove_LinearNextScenario(t *testing.T) {
	r, clock := newTestRoller(t, Config{Width: 300, Height: 150, Motion: "linear", Duration: time.Second})
	oldCenter := r.Panel(RoleCenter).Slot

	r.Move(MoveRequest{Data: "X", Flow: FlowNext})
	require.Equal(t, StatusRunning, r.Status())
	require.True(t, r.Animating())

	incoming := r.Panel(RoleNext)
	assert.True(t, incoming.Attached)
	assert.Equal(t, 300, incoming.Offset)
	assert.Equal(t, "X", incoming.Content)

	assert.True(t, r.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, -150, r.Panel(RoleCenter).Offset)
	assert.Equal(t, 150, r.Panel(RoleNext).Offset)

	assert.False(t, r.Tick(clock.Advance(500*time.Millisecond)))
	assert.Equal(t, StatusIdle, r.Status())
	assert.Equal(t, "X", r.Center())
	assert.Equal(t, 0, r.Panel(RoleCenter).Offset)

	old := r.Panel(RoleNext)
	assert.Equal(t, oldCenter, old.Slot)
	assert.Equal(t, -300, old.Offset)
	assert.False(t, old.Attached)
}

func TestMove_LinearPrev(t *testing.T) {
	r, clock := newTestRoller(t, Config{Width: 40, Height: 10, Motion: "linear", Duration: 100 * time.Millisecond})

	r.Move(MoveRequest{Data: "P", Flow: FlowPrev})
	assert.Equal(t, -40, r.Panel(RolePrev).Offset)

	r.Tick(clock.Advance(25 * time.Millisecond))
	assert.Equal(t, -30, r.Panel(RolePrev).Offset)
	assert.Equal(t, 10, r.Panel(RoleCenter).Offset)

	r.Tick(clock.Advance(75 * time.Millisecond))
	assert.Equal(t, "P", r.Center())
	assert.Equal(t, 40, r.Panel(RolePrev).Offset)
	assert.Equal(t, FlowNext, r.Flow(), "a per-call flow does not change the default")
}

func TestMove_QueuesWhileRunning(t *testing.T) {
	obs := &recordingObserver{}
	r, clock := newTestRoller(t, Config{Width: 30, Height: 10, Motion: "linear", Duration: 100 * time.Millisecond},
		WithObserver(obs))
	afters := 0
	r.On(EventAfterMove, func(any) { afters++ })

	r.Move(MoveRequest{Data: "A"})
	r.Move(MoveRequest{Data: "B", Duration: 50 * time.Millisecond})
	r.Move(MoveRequest{Data: "C", Flow: FlowPrev})

	assert.Equal(t, StatusRunning, r.Status())
	require.Equal(t, 2, r.Pending())
	q := r.Queue()
	assert.Equal(t, "B", q[0].Data)
	assert.Equal(t, 50*time.Millisecond, q[0].Duration)
	assert.Equal(t, "C", q[1].Data)
	assert.Equal(t, FlowPrev, q[1].Flow)
	assert.NotEmpty(t, q[0].ID)

	// A finishes and B starts in the same tick: no idle gap.
	assert.True(t, r.Tick(clock.Advance(100*time.Millisecond)))
	assert.Equal(t, StatusRunning, r.Status())
	assert.Equal(t, 1, r.Pending())
	assert.Equal(t, "A", r.Center())
	assert.Equal(t, 0, afters)

	// B uses its own 50ms duration.
	assert.True(t, r.Tick(clock.Advance(50*time.Millisecond)))
	assert.Equal(t, "B", r.Center())
	assert.Equal(t, 0, r.Pending())

	assert.False(t, r.Tick(clock.Advance(100*time.Millisecond)))
	assert.Equal(t, "C", r.Center())
	assert.Equal(t, StatusIdle, r.Status())
	assert.Equal(t, 1, afters)

	assert.Equal(t, []string{
		"start:A:next", "queued:B", "queued:C",
		"finish:A", "start:B:next",
		"finish:B", "start:C:prev",
		"finish:C",
	}, obs.log)
}

func TestMove_QueueDrainsInstantly(t *testing.T) {
	r, _ := newTestRoller(t, Config{Width: 30, Height: 10})
	var befores []string
	r.On(EventBeforeMove, func(p any) {
		ev := p.(MoveEvent)
		befores = append(befores, ev.Data)
		if ev.Data == "A" {
			// Re-entrant moves from a handler are queued behind A.
			r.Move(MoveRequest{Data: "B"})
		}
	})
	r.Move(MoveRequest{Data: "A"})
	assert.Equal(t, []string{"A", "B"}, befores)
	assert.Equal(t, "B", r.Center())
	assert.Equal(t, StatusIdle, r.Status())
}

func TestFix_TwoMovesSameFlowRestoreRoles(t *testing.T) {
	r, _ := newTestRoller(t, Config{Width: 30, Height: 10})
	center := r.Panel(RoleCenter).Slot
	next := r.Panel(RoleNext).Slot
	prev := r.Panel(RolePrev).Slot

	r.Move(MoveRequest{Data: "1"})
	r.Move(MoveRequest{Data: "2"})

	assert.Equal(t, center, r.Panel(RoleCenter).Slot)
	assert.Equal(t, next, r.Panel(RoleNext).Slot)
	assert.Equal(t, prev, r.Panel(RolePrev).Slot)
	assert.Equal(t, "2", r.Center())
}

func TestChangeMotion(t *testing.T) {
	var buf bytes.Buffer
	r, clock := newTestRoller(t, Config{Width: 30, Height: 10}, WithLogger(log.New(&buf, "", 0)))

	assert.True(t, r.ChangeMotion("circEaseInOut"))
	assert.Equal(t, "circEaseInOut", r.MotionName())
	r.Move(MoveRequest{Data: "A"})
	assert.True(t, r.Animating())

	// Changing mid-flight does not affect the running animation.
	assert.False(t, r.ChangeMotion("wobble"))
	assert.Equal(t, "", r.MotionName())
	assert.Contains(t, buf.String(), `unknown motion "wobble"`)
	assert.True(t, r.Animating())
	r.Tick(clock.Advance(time.Second))
	assert.Equal(t, StatusIdle, r.Status())

	r.Move(MoveRequest{Data: "B"})
	assert.False(t, r.Animating(), "next move is instant")
	assert.True(t, r.ChangeMotion("noeffect"))
}

func TestSetFlow(t *testing.T) {
	r, _ := newTestRoller(t, Config{Width: 30, Height: 10})
	r.SetFlow(FlowPrev)
	assert.Equal(t, FlowPrev, r.Flow())
	r.SetFlow("")
	assert.Equal(t, FlowPrev, r.Flow())

	r.Move(MoveRequest{Data: "P"})
	assert.Equal(t, "P", r.Center())
	assert.Equal(t, 30, r.Panel(RolePrev).Offset, "default prev flow moved the old center right")
}

func TestSetSize_DeferredWhileRunning(t *testing.T) {
	r, clock := newTestRoller(t, Config{Width: 30, Height: 10, Motion: "linear", Duration: 100 * time.Millisecond})
	r.SetSize(60, 10)
	assert.Equal(t, 60, r.Distance())

	r.Move(MoveRequest{Data: "A"})
	r.SetSize(90, 10)
	assert.Equal(t, 60, r.Distance())
	r.Tick(clock.Advance(100 * time.Millisecond))
	assert.Equal(t, 90, r.Distance())
	w, h := r.Size()
	assert.Equal(t, 90, w)
	assert.Equal(t, 10, h)

	r.SetSize(0, 10)
	assert.Equal(t, 90, r.Distance())
}

func TestCustomEmitterAndNotifications(t *testing.T) {
	bus := events.New(nil)
	r, _ := newTestRoller(t, Config{Width: 30, Height: 10}, WithEmitter(bus))
	got := ""
	off := bus.On("pageChanged", func(p any) { got = p.(string) })
	r.Fire("pageChanged", "3/7")
	assert.Equal(t, "3/7", got)
	off()

	afters := 0
	r.On(EventAfterMove, func(any) { afters++ })
	r.Move(MoveRequest{Data: "A"})
	assert.Equal(t, 1, afters)
	assert.Equal(t, 1, bus.Count(EventAfterMove))
}

func TestTick_IdleIsNoop(t *testing.T) {
	r, clock := newTestRoller(t, Config{Width: 30, Height: 10})
	assert.False(t, r.Tick(clock.Now()))
	assert.Equal(t, 10*time.Millisecond, r.FrameDelay())
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	r, _ := newTestRoller(t, Config{Width: 30, Height: 10}, WithObserver(MultiObserver{a, b, NopObserver{}}))

	r.Move(MoveRequest{Data: "X"})

	want := []string{"start:X:next", "finish:X"}
	assert.Equal(t, want, a.log)
	assert.Equal(t, want, b.log)
}

func TestFlow_UnknownValuesMeanNext(t *testing.T) {
	obs := &recordingObserver{}
	r, clock := newTestRoller(t, Config{Width: 30, Height: 10, Motion: "linear", Duration: 100 * time.Millisecond},
		WithObserver(obs))

	r.SetFlow("sideways")
	assert.Equal(t, FlowNext, r.Flow())
	r.SetFlow(FlowPrev)
	r.SetFlow("")
	assert.Equal(t, FlowPrev, r.Flow(), "empty flow keeps the default")

	var flows []Flow
	r.On(EventBeforeMove, func(p any) { flows = append(flows, p.(MoveEvent).Flow) })

	r.Move(MoveRequest{Data: "A", Flow: "up"})
	r.Move(MoveRequest{Data: "B", Flow: "down"})
	require.Equal(t, 1, r.Pending())
	assert.Equal(t, FlowNext, r.Queue()[0].Flow)

	r.Tick(clock.Advance(50 * time.Millisecond))
	assert.Equal(t, 15, r.Panel(RoleNext).Offset, "unknown flow animates as next")
	r.Tick(clock.Advance(50 * time.Millisecond))
	r.Tick(clock.Advance(100 * time.Millisecond))

	assert.Equal(t, []Flow{FlowNext, FlowNext}, flows)
	assert.Equal(t, []string{
		"start:A:next", "queued:B", "finish:A", "start:B:next", "finish:B",
	}, obs.log)
}
