package ui

import (
	"rollpanel/internal/motion"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// MotionPickerModal lists the registered easing names plus "noeffect".
type MotionPickerModal struct {
	list list.Model
}

type motionItem string

func (m motionItem) FilterValue() string { return string(m) }
func (m motionItem) Title() string       { return string(m) }
func (m motionItem) Description() string { return "" }

var _ View = (*MotionPickerModal)(nil)

// NewMotionPickerModal creates the picker with current preselected.
func NewMotionPickerModal(current string) *MotionPickerModal {
	names := append([]string{motion.NoEffect}, motion.Names()...)
	items := make([]list.Item, len(names))
	selected := 0
	for i, n := range names {
		items[i] = motionItem(n)
		if n == current {
			selected = i
		}
	}
	l := list.New(items, NewCompactListDelegate(), 32, 14)
	l.Title = "Motion"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Select(selected)
	return &MotionPickerModal{list: l}
}

// Selected returns the highlighted motion name.
func (m *MotionPickerModal) Selected() string {
	if sel := m.list.SelectedItem(); sel != nil {
		return string(sel.(motionItem))
	}
	return ""
}

// Init implements View.
func (m *MotionPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MotionPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			return m, sendMsg(DismissModalMsg{})
		case "enter":
			if name := m.Selected(); name != "" {
				return m, sendMsg(SelectMotionMsg{Name: name})
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MotionPickerModal) View() string {
	help := "Enter: select  Esc: cancel  /: filter"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
