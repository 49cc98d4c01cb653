package ui

import (
	"fmt"
	"io"
	"log"

	"rollpanel/internal/config"
	"rollpanel/internal/deck"
	"rollpanel/internal/roller"
	"rollpanel/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// AppModel is the root model: a deck shown through a roller, a status bar,
// and an overlay stack for the motion picker.
type AppModel struct {
	Mode       AppMode
	Deck       *deck.Deck
	Roller     *RollerView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Layout     Layout

	// Settings is what SPC w writes to ConfigPath. Picking a motion or
	// flipping the flow updates it.
	Settings   config.Config
	ConfigPath string
	Logger     *log.Logger

	notice        string
	noticeFailed  bool
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds the roller from settings and shows the deck's current
// page. opts are passed to roller.New.
func NewAppModel(d *deck.Deck, settings config.Config, configPath string, opts ...roller.Option) (*AppModel, error) {
	cfg := settings.Roller.Roller(defaultWidth, defaultHeight-statusHeight)
	r, err := roller.New(cfg, d.Current(), opts...)
	if err != nil {
		return nil, err
	}
	a := &AppModel{
		Mode:       ModeDeck,
		Deck:       d,
		Roller:     NewRollerView(r),
		Settings:   settings,
		ConfigPath: configPath,
		Logger:     log.New(io.Discard, "", 0),
	}
	a.Layout = deckLayout{roller: a.Roller}
	a.KeyHandler = NewKeyHandler(newDeckKeymap())
	a.resize(defaultWidth, defaultHeight)
	return a, nil
}

func newDeckKeymap() *Keymap {
	deckOnly := []AppMode{ModeDeck}
	km := NewKeymap()
	km.Add("next page", sendMsg(NextPageMsg{}), deckOnly, "l", "right", "j", "down")
	km.Add("prev page", sendMsg(PrevPageMsg{}), deckOnly, "h", "left", "k", "up")
	km.Add("quit", tea.Quit, nil, "q", "ctrl+c", "SPC q")
	km.Add("motion", sendMsg(ShowMotionPickerMsg{}), deckOnly, "SPC m")
	km.Add("flip flow", sendMsg(FlipFlowMsg{}), deckOnly, "SPC f")
	km.Add("save settings", sendMsg(SaveSettingsMsg{}), nil, "SPC w")
	return km
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Roller.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		// Open modals take every key, including the leader.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
		return a, nil
	case NextPageMsg:
		return a.handlePage(true)
	case PrevPageMsg:
		return a.handlePage(false)
	case ShowMotionPickerMsg:
		a.Overlays.Push(Overlay{View: NewMotionPickerModal(a.Roller.Roller.MotionName())})
		a.Mode = ModeMotionPicker
		return a, nil
	case SelectMotionMsg:
		return a.handleSelectMotion(msg.Name)
	case DismissModalMsg:
		a.dismissModal()
		return a, nil
	case FlipFlowMsg:
		return a.handleFlipFlow()
	case SaveSettingsMsg:
		return a, saveSettingsCmd(a.Settings, a.ConfigPath)
	case SettingsSavedMsg:
		if msg.Err != nil {
			a.Logger.Printf("save settings: %v", msg.Err)
			a.setNotice("save failed: "+msg.Err.Error(), true)
		} else {
			a.setNotice("settings saved", false)
		}
		return a, nil
	case MoveStartedMsg:
		a.Logger.Printf("move %s started flow=%s", msg.Event.ID, msg.Event.Flow)
		return a, nil
	case MoveSettledMsg:
		a.Logger.Printf("moves settled on page %d", a.Deck.Index+1)
		return a, nil
	}

	var cmds []tea.Cmd
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		cmds = append(cmds, cmd)
	}
	_, cmd := a.Roller.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// handlePage advances the deck cursor and rolls to the new page. Forward
// moves use the roller's default flow; backward moves use the opposite one.
func (a *appModelAdapter) handlePage(forward bool) (tea.Model, tea.Cmd) {
	wrap := a.Settings.UI.Wrap
	var (
		page string
		ok   bool
		flow roller.Flow
	)
	if forward {
		page, ok = a.Deck.Next(wrap)
	} else {
		page, ok = a.Deck.Prev(wrap)
		flow = a.Roller.Roller.Flow().Opposite()
	}
	if !ok {
		if forward {
			a.setNotice("last page", false)
		} else {
			a.setNotice("first page", false)
		}
		return a, nil
	}
	a.setNotice("", false)
	_, cmd := a.Roller.Update(MoveMsg{Request: roller.MoveRequest{Data: page, Flow: flow}})
	return a, cmd
}

func (a *appModelAdapter) handleSelectMotion(name string) (tea.Model, tea.Cmd) {
	a.dismissModal()
	if !a.Roller.Roller.ChangeMotion(name) {
		a.setNotice(fmt.Sprintf("unknown motion %q", name), true)
		return a, nil
	}
	a.Settings.Roller.Motion = name
	a.setNotice("motion "+motionLabel(a.Roller.Roller.MotionName()), false)
	return a, nil
}

func (a *appModelAdapter) handleFlipFlow() (tea.Model, tea.Cmd) {
	flow := a.Roller.Roller.Flow().Opposite()
	a.Roller.Roller.SetFlow(flow)
	a.Settings.Roller.Flow = string(flow)
	a.setNotice("flow "+string(flow), false)
	return a, nil
}

func (a *AppModel) setNotice(text string, failed bool) {
	a.notice = text
	a.noticeFailed = failed
}

func (a *AppModel) dismissModal() {
	a.Overlays.Pop()
	if a.Overlays.Len() == 0 {
		a.Mode = ModeDeck
	}
}

// resize lays the panels out for a terminal of the given size.
func (a *AppModel) resize(width, height int) {
	a.width, a.height = width, height
	for _, p := range a.Layout.Panels() {
		if p.ID != "roller" {
			continue
		}
		_, _, w, h := p.Bounds(width, height)
		a.Roller.SetSize(w, h)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	base := a.Roller.View() + "\n" + a.statusLine()
	if a.KeyHandler != nil && a.KeyHandler.Waiting() {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

// statusLine shows page index, roller status, queue depth, motion and flow,
// followed by the last notice. It never wraps past the terminal width.
func (a *AppModel) statusLine() string {
	r := a.Roller.Roller
	style := Styles.Status
	if r.Status() == roller.StatusRunning {
		style = Styles.Running
	}
	line := fmt.Sprintf("%d/%d  %s  pending %d  %s  %s",
		a.Deck.Index+1, a.Deck.Len(), r.Status(), r.Pending(), motionLabel(r.MotionName()), r.Flow())
	out := style.Render(line)
	if a.notice != "" {
		noticeStyle := Styles.Hint
		if a.noticeFailed {
			noticeStyle = Styles.Error
		}
		out += "  " + noticeStyle.Render(a.notice)
	}
	return textutil.Truncate(out, a.width)
}

func motionLabel(name string) string {
	if name == "" {
		return "instant"
	}
	return name
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
