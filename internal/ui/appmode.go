package ui

// AppMode represents what currently receives keys: the deck or a picker.
type AppMode int

const (
	ModeDeck AppMode = iota
	ModeMotionPicker
)

func (m AppMode) String() string {
	switch m {
	case ModeDeck:
		return "Deck"
	case ModeMotionPicker:
		return "MotionPicker"
	default:
		return "Unknown"
	}
}
