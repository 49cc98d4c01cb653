package ui

// NextPageMsg rolls to the next page (l, right, j, down).
type NextPageMsg struct{}

// PrevPageMsg rolls to the previous page (h, left, k, up).
type PrevPageMsg struct{}

// ShowMotionPickerMsg opens the motion picker (SPC m).
type ShowMotionPickerMsg struct{}

// SelectMotionMsg is sent when the user picks a motion from the picker.
type SelectMotionMsg struct {
	Name string
}

// FlipFlowMsg reverses the default flow (SPC f).
type FlipFlowMsg struct{}

// SaveSettingsMsg writes the current settings to the config file (SPC w).
type SaveSettingsMsg struct{}

// SettingsSavedMsg reports the result of a save.
type SettingsSavedMsg struct {
	Path string
	Err  error
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
