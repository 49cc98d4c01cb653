package ui

import (
	"rollpanel/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// saveSettingsCmd writes settings off the update loop and reports back with
// SettingsSavedMsg.
func saveSettingsCmd(settings config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		err := config.Save(settings, path)
		return SettingsSavedMsg{Path: path, Err: err}
	}
}

func sendMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
