package ui

import (
	"strings"
	"time"

	"rollpanel/internal/roller"
	"rollpanel/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameMsg advances the roller's animation to Time.
type FrameMsg struct {
	Time time.Time
}

// MoveMsg asks the roller view to move to new content.
type MoveMsg struct {
	Request roller.MoveRequest
}

// MoveStartedMsg reports a beforeMove notification from the roller.
type MoveStartedMsg struct {
	Event roller.MoveEvent
}

// MoveSettledMsg reports an afterMove notification: the roller is idle and
// its queue is empty.
type MoveSettledMsg struct{}

// RollerView renders a roller as a grid of terminal cells. Each mounted
// panel is drawn at its offset along the roller's axis, later mounts on top.
type RollerView struct {
	Roller *roller.Roller

	panelStyle lipgloss.Style
	frameStyle lipgloss.Style
	ticking    bool
	pending    []tea.Msg
	unsub      []func()
}

var _ View = (*RollerView)(nil)

// NewRollerView wraps r. The panel and wrapper tag classes pick the styles
// from PanelStyles and FrameStyles.
func NewRollerView(r *roller.Roller) *RollerView {
	v := &RollerView{Roller: r}
	cfg := r.Config()
	if s, ok := PanelStyles[cfg.PanelSpec().Class]; ok {
		v.panelStyle = s
	} else {
		v.panelStyle = lipgloss.NewStyle()
	}
	if s, ok := FrameStyles[cfg.WrapperSpec().Class]; ok {
		v.frameStyle = s
	} else {
		v.frameStyle = lipgloss.NewStyle()
	}
	v.unsub = append(v.unsub,
		r.On(roller.EventBeforeMove, func(payload any) {
			if ev, ok := payload.(roller.MoveEvent); ok {
				v.pending = append(v.pending, MoveStartedMsg{Event: ev})
			}
		}),
		r.On(roller.EventAfterMove, func(any) {
			v.pending = append(v.pending, MoveSettledMsg{})
		}),
	)
	return v
}

// Close unsubscribes the view from the roller's notifications.
func (v *RollerView) Close() {
	for _, u := range v.unsub {
		u()
	}
	v.unsub = nil
}

// Init implements View.
func (v *RollerView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *RollerView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case MoveMsg:
		v.Roller.Move(msg.Request)
		cmds = append(cmds, v.scheduleFrame())
	case FrameMsg:
		v.ticking = false
		v.Roller.Tick(msg.Time)
		cmds = append(cmds, v.scheduleFrame())
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
	}
	cmds = append(cmds, v.drainNotifications())
	return v, tea.Batch(cmds...)
}

// SetSize sizes the roller to fit inside the frame at the given outer size.
func (v *RollerView) SetSize(width, height int) {
	v.Roller.SetSize(width-v.frameStyle.GetHorizontalFrameSize(), height-v.frameStyle.GetVerticalFrameSize())
}

// scheduleFrame starts one tick chain while the roller is animating.
func (v *RollerView) scheduleFrame() tea.Cmd {
	if v.ticking || !v.Roller.Animating() {
		return nil
	}
	v.ticking = true
	return tea.Tick(v.Roller.FrameDelay(), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// drainNotifications turns notifications collected during this update into
// messages for the host model.
func (v *RollerView) drainNotifications() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	msgs := v.pending
	v.pending = nil
	cmds := make([]tea.Cmd, len(msgs))
	for i, m := range msgs {
		cmds[i] = func() tea.Msg { return m }
	}
	return tea.Sequence(cmds...)
}

// View implements View.
func (v *RollerView) View() string {
	return v.frameStyle.Render(strings.Join(v.Canvas(), "\n"))
}

// Canvas composites the mounted panels into the roller's cells, one string
// per row, without the frame.
func (v *RollerView) Canvas() []string {
	width, height := v.Roller.Size()
	panels := v.Roller.Attached()
	blocks := make([][]string, len(panels))
	for i, p := range panels {
		blocks[i] = v.renderPanel(p.Content, width, height)
	}
	if v.Roller.Axis() == roller.AxisTop {
		return compositeRows(panels, blocks, width, height)
	}
	return compositeColumns(panels, blocks, width, height)
}

func (v *RollerView) renderPanel(content string, width, height int) []string {
	lines := textutil.Block(content, width, height)
	for i, l := range lines {
		lines[i] = v.panelStyle.Render(l)
	}
	return lines
}

// compositeColumns paints horizontally offset panels. Each column belongs to
// the top-most panel covering it; runs of columns with the same owner are cut
// from that panel's line in one piece.
func compositeColumns(panels []roller.Panel, blocks [][]string, width, height int) []string {
	owner := make([]int, width)
	for x := range owner {
		owner[x] = -1
		for i := len(panels) - 1; i >= 0; i-- {
			if off := panels[i].Offset; x >= off && x < off+width {
				owner[x] = i
				break
			}
		}
	}

	rows := make([]string, height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < width; {
			end := x + 1
			for end < width && owner[end] == owner[x] {
				end++
			}
			if i := owner[x]; i < 0 {
				b.WriteString(strings.Repeat(" ", end-x))
			} else {
				b.WriteString(textutil.Window(blocks[i][y], x-panels[i].Offset, end-x))
			}
			x = end
		}
		rows[y] = b.String()
	}
	return rows
}

// compositeRows paints vertically offset panels row by row.
func compositeRows(panels []roller.Panel, blocks [][]string, width, height int) []string {
	blank := strings.Repeat(" ", width)
	rows := make([]string, height)
	for y := range rows {
		rows[y] = blank
		for i := len(panels) - 1; i >= 0; i-- {
			if src := y - panels[i].Offset; src >= 0 && src < height {
				rows[y] = blocks[i][src]
				break
			}
		}
	}
	return rows
}
