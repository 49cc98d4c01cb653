package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var cancelBinding = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

// deckHelp adapts the keymap to help.KeyMap for the handler's current
// leader sequence. Short help is the next leader level; full help adds the
// direct keys.
type deckHelp struct {
	handler *KeyHandler
	mode    AppMode
}

var _ help.KeyMap = deckHelp{}

func (d deckHelp) ShortHelp() []key.Binding {
	prefix := leaderSeq
	if d.handler.Waiting() {
		prefix = d.handler.Sequence()
	}
	hints := d.handler.Keymap.Leader(prefix, d.mode)
	if len(hints) == 0 {
		return nil
	}
	return append(hints, cancelBinding)
}

func (d deckHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp(), d.handler.Keymap.Direct(d.mode)}
}

// RenderKeybindHelp produces the transient help box shown after SPC: the
// keys that may follow, then the direct page keys.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil {
		return ""
	}
	groups := deckHelp{handler: h, mode: mode}.FullHelp()
	if len(groups[0]) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	prefix := leaderSeq
	if h.Waiting() {
		prefix = h.Sequence()
	}
	content := Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(groups[0])
	if len(groups[1]) > 0 {
		content += "\n" + helpModel.ShortHelpView(groups[1])
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return boxStyle.Render(content)
}
